// Package markdown extracts document structure from raw markdown text.
//
// It recognizes ATX headings and splits a document into ordered sections for
// collapsed display of large files. Sections are a derived view computed
// fresh from a content snapshot; nothing here mutates or caches state.
package markdown
