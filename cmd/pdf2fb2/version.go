package main

// version is set at build time via ldflags.
var version = "1.0"

// versionTemplate prints "pdf2fb2 <version>" for --version.
const versionTemplate = "{{.Name}} {{.Version}}\n"
