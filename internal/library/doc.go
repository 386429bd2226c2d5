package library

// Package library discovers audiobook files on disk. Scan walks a directory
// tree for supported audio files and builds track descriptors, reading
// titles and authors from embedded tags where present. Import copies an
// external file into the library directory.
