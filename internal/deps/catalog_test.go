package deps

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		include string
		want    string
	}{
		{"hardware/adc.h", "hardware_adc"},
		{"pico/stdlib.h", "pico_stdlib"},
		{"pico/binary_info.h", "pico_binary_info"},
		{"hardware\\spi.h", "hardware_spi"},
		{"stdio.h", "stdio"},
		{"noextension", "noextension"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.include); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.include, got, c.want)
		}
	}
}

func TestLookup(t *testing.T) {
	lib, ok := Lookup("hardware_adc")
	if !ok {
		t.Fatal("hardware_adc not found in catalog")
	}
	if lib != ADC {
		t.Errorf("Lookup(hardware_adc) = %v, want ADC", lib)
	}
	if got := lib.Link(); got != "hardware_adc" {
		t.Errorf("ADC.Link() = %q, want %q", got, "hardware_adc")
	}

	if _, ok := Lookup("nonexistent_lib"); ok {
		t.Error("expected nonexistent_lib to be unknown")
	}
}

// Aliases of one link target must stay independently matchable: both the
// stdlib name and the gpio name resolve, to distinct catalog entries that
// share the pico_stdlib link target.
func TestLookupAliases(t *testing.T) {
	stdlib, ok := Lookup("pico_stdlib")
	if !ok {
		t.Fatal("pico_stdlib not found in catalog")
	}
	gpio, ok := Lookup("hardware_gpio")
	if !ok {
		t.Fatal("hardware_gpio not found in catalog")
	}
	if stdlib == gpio {
		t.Error("pico_stdlib and hardware_gpio resolved to the same entry")
	}
	if stdlib.Link() != "pico_stdlib" || gpio.Link() != "pico_stdlib" {
		t.Errorf("links = %q, %q, want both pico_stdlib", stdlib.Link(), gpio.Link())
	}
}

// Every catalog entry must carry a link target.
func TestCatalogComplete(t *testing.T) {
	for name, lib := range catalog {
		if int(lib) >= len(links) || links[lib] == "" {
			t.Errorf("catalog entry %q has no link target", name)
		}
	}
}
