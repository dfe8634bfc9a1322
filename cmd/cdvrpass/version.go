package main

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "2023.08.12.2305"
