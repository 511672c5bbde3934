// Package clipboard holds the editor's two transfer buffers.
//
// Clipboard keeps the last copied span as line fragments and can mirror it
// to the operating system clipboard through a SystemClipboard sink.
// CutBuffer collects the line tails removed by repeated cut-to-end-of-line
// so that they can be pasted back as one block.
package clipboard
