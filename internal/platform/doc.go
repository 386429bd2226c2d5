package platform

// Package platform contains OS integration glue: default directory
// resolution, filesystem helpers, and revealing a file in the system file
// manager.
