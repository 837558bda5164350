// SPDX-License-Identifier: Unlicense OR MIT

// Package widget lays out progress circles in Gio user interfaces.
package widget
