//go:build debug

package editor

const debugBuild = true
