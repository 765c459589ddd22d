// Package config manages user-level settings stored at ~/.genviper/config.yaml.
// Settings select the UI platform vocabulary and the directory generated
// modules are written under. Every write is validated against an embedded
// JSON schema so a bad value is rejected before it reaches the file.
package config
