// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the leaf nodes of a layout tree: rich
// text, images and fixed size boxes. Widgets keep the state of their
// last arrangement for a renderer to read; they draw nothing
// themselves.
package widget
