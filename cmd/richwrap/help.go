// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The richwrap command wraps rich text documents and prints the result.

Usage:

	richwrap [flags] <document.yaml> [document.yaml ...]

A document is a YAML file listing paragraphs of text, hyperlinks, font
changes, line breaks and images. Documents are laid out independently and
printed in the order given.

The -width flag overrides the layout width of every document.

The -face flag selects the measuring surface: cell measures terminal cells,
basic measures with the 7x13 fixed font and go with the Go fonts. Documents
measured in cells are drawn as text; other documents are listed block by
block.

The -grid flag lays the paragraphs out as the cells of a grid, configured
by the document's grid section. Without one the cells form a single row.

The -blocks flag lists the positioned text blocks instead of drawing them.

The -png flag writes a PNG rendering of each document measured with the
basic or go face into the given directory. The -scale flag enlarges the
rendering by a whole factor.
`
