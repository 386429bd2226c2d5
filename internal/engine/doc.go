package engine

// Package engine wraps the native media engine (libmpv via go-mpv) behind a
// small Engine/Handle contract: open a file, issue transport commands, query
// position, release. All decoding, format support and output device handling
// live in the engine; this package is command-and-query glue only.
