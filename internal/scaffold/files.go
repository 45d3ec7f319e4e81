package scaffold

// cmakeListsFile is the project-root CMakeLists.txt. It includes the
// generated imports.cmake and links through link_imported_libs, so builds
// pick up exactly the libraries the dependency scan discovered.
const cmakeListsFile = `cmake_minimum_required(VERSION 3.13)

include(pico_sdk_import.cmake)

project({{.Name}} C CXX ASM)
set(CMAKE_C_STANDARD 11)
set(CMAKE_CXX_STANDARD 17)

pico_sdk_init()

include(${CMAKE_CURRENT_LIST_DIR}/imports.cmake)

file(GLOB GENERATED_SOURCES ${CMAKE_CURRENT_LIST_DIR}/{{.GenDir}}/*.c)
add_executable({{.Name}} ${GENERATED_SOURCES})

link_imported_libs({{.Name}})

pico_enable_stdio_usb({{.Name}} 1)
pico_enable_stdio_uart({{.Name}} 0)

pico_add_extra_outputs({{.Name}})
`

// sdkImportFile locates the SDK from PICO_SDK_PATH, mirroring the shim the
// SDK itself ships in external/pico_sdk_import.cmake.
const sdkImportFile = `# Pull in the Raspberry Pi Pico SDK (must be included before project)

if (DEFINED ENV{PICO_SDK_PATH} AND (NOT PICO_SDK_PATH))
    set(PICO_SDK_PATH $ENV{PICO_SDK_PATH})
    message("Using PICO_SDK_PATH from environment ('${PICO_SDK_PATH}')")
endif ()

if (NOT PICO_SDK_PATH)
    message(FATAL_ERROR "SDK location was not specified. Please set PICO_SDK_PATH.")
endif ()

get_filename_component(PICO_SDK_PATH "${PICO_SDK_PATH}" REALPATH BASE_DIR "${CMAKE_BINARY_DIR}")
if (NOT EXISTS ${PICO_SDK_PATH})
    message(FATAL_ERROR "Directory '${PICO_SDK_PATH}' not found")
endif ()

set(PICO_SDK_INIT_CMAKE_FILE ${PICO_SDK_PATH}/pico_sdk_init.cmake)
if (NOT EXISTS ${PICO_SDK_INIT_CMAKE_FILE})
    message(FATAL_ERROR "Directory '${PICO_SDK_PATH}' does not appear to contain the Raspberry Pi Pico SDK")
endif ()

set(PICO_SDK_PATH ${PICO_SDK_PATH} CACHE PATH "Path to the Raspberry Pi Pico SDK" FORCE)

include(${PICO_SDK_INIT_CMAKE_FILE})
`

// gitignoreFile keeps build output and regenerated artifacts out of
// version control.
const gitignoreFile = `build/
{{.GenDir}}/
imports.cmake
`
