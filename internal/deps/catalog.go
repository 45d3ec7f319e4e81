// Package deps infers which pico-sdk libraries a project's generated C
// sources require, by scanning their #include directives against a fixed
// catalog of known headers.
package deps

import (
	"path"
	"strings"
)

// Library identifies one linkable pico-sdk library known to the catalog.
type Library int

const (
	Stdlib Library = iota
	GPIO
	UART
	Divider
	ADC
	Base
	Claim
	Clocks
	DMA
	Exception
	Flash
	I2C
	Interp
	IRQ
	PIO
	PLL
	PWM
	Resets
	RTC
	SPI
	Sync
	Timer
	Vreg
	Watchdog
	XOSC
	Multicore
	PicoSync
	PicoTime
	Platform
	UniqueID
	Bootrom
	BinaryInfo
)

// links maps each Library to the target the native build links against.
// Several catalog entries share one link target: the gpio, uart and
// divider headers ship inside pico_stdlib rather than as standalone
// libraries, but each stays independently matchable by its own name.
var links = [...]string{
	Stdlib:     "pico_stdlib",
	GPIO:       "pico_stdlib",
	UART:       "pico_stdlib",
	Divider:    "pico_stdlib",
	ADC:        "hardware_adc",
	Base:       "hardware_base",
	Claim:      "hardware_claim",
	Clocks:     "hardware_clocks",
	DMA:        "hardware_dma",
	Exception:  "hardware_exception",
	Flash:      "hardware_flash",
	I2C:        "hardware_i2c",
	Interp:     "hardware_interp",
	IRQ:        "hardware_irq",
	PIO:        "hardware_pio",
	PLL:        "hardware_pll",
	PWM:        "hardware_pwm",
	Resets:     "hardware_resets",
	RTC:        "hardware_rtc",
	SPI:        "hardware_spi",
	Sync:       "hardware_sync",
	Timer:      "hardware_timer",
	Vreg:       "hardware_vreg",
	Watchdog:   "hardware_watchdog",
	XOSC:       "hardware_xosc",
	Multicore:  "pico_multicore",
	PicoSync:   "pico_sync",
	PicoTime:   "pico_time",
	Platform:   "pico_platform",
	UniqueID:   "pico_unique_id",
	Bootrom:    "pico_bootrom",
	BinaryInfo: "pico_binary_info",
}

// Link returns the underlying library identifier passed to the linker.
func (l Library) Link() string { return links[l] }

// catalog maps normalized include names to libraries. Keys are the
// canonical names produced by Normalize. The set is fixed at build time
// of this tool and is not user-extensible.
var catalog = map[string]Library{
	"pico_stdlib":        Stdlib,
	"hardware_gpio":      GPIO,
	"hardware_uart":      UART,
	"hardware_divider":   Divider,
	"hardware_adc":       ADC,
	"hardware_base":      Base,
	"hardware_claim":     Claim,
	"hardware_clocks":    Clocks,
	"hardware_dma":       DMA,
	"hardware_exception": Exception,
	"hardware_flash":     Flash,
	"hardware_i2c":       I2C,
	"hardware_interp":    Interp,
	"hardware_irq":       IRQ,
	"hardware_pio":       PIO,
	"hardware_pll":       PLL,
	"hardware_pwm":       PWM,
	"hardware_resets":    Resets,
	"hardware_rtc":       RTC,
	"hardware_spi":       SPI,
	"hardware_sync":      Sync,
	"hardware_timer":     Timer,
	"hardware_vreg":      Vreg,
	"hardware_watchdog":  Watchdog,
	"hardware_xosc":      XOSC,
	"pico_multicore":     Multicore,
	"pico_sync":          PicoSync,
	"pico_time":          PicoTime,
	"pico_platform":      Platform,
	"pico_unique_id":     UniqueID,
	"pico_bootrom":       Bootrom,
	"pico_binary_info":   BinaryInfo,
}

// Lookup resolves a normalized include name against the catalog. The
// second result reports whether the name is known. Unknown names are not
// an error; callers skip them.
func Lookup(name string) (Library, bool) {
	lib, ok := catalog[name]
	return lib, ok
}

// Normalize maps a raw include path to a candidate catalog name: path
// separators fold to underscores and the extension of the final segment
// is dropped. "hardware/adc.h" becomes "hardware_adc". Any input yields
// some output; whether it matches the catalog is up to Lookup.
func Normalize(include string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(include)
	if ext := path.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
