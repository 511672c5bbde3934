// Package syntax implements a lightweight balance checker for common file
// types.
//
// The checker does not parse. Each language category runs one linear scan
// over the document and stops at the first problem:
//
//   - json: {} and [] depth outside strings
//   - brace-block (C, C++, Go, Java): {} depth outside strings and comments
//   - markup (HTML, XML): open versus closing tag count
//   - yaml: tabs, and per-line flow collection balance
//   - python: indentation mixing tabs and spaces
//
// The category is chosen from the file extension with DetectLanguage.
// Files with any other extension are never diagnosed.
package syntax
