// Package webarchive extracts Safari .webarchive files into directory
// trees suitable for offline viewing: the main HTML document, its
// sub-resources, and sub-frame archives in their own sub-directories, with
// internal references rewritten to relative filesystem paths.
package webarchive
