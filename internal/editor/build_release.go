//go:build !debug

package editor

const debugBuild = false
