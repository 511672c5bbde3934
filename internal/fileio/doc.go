// Package fileio reads and writes documents as lines.
//
// The editor never touches the file system directly. It loads through a
// Loader and saves through a Saver; Files implements both over an FS,
// which is the operating system in the binary and a MemFS in tests.
//
// On load, lines are split at '\n' with one trailing '\r' removed, and a
// leading byte order mark is stripped (UTF-16 content is converted to
// UTF-8). On save, every line is written followed by '\n'.
package fileio
