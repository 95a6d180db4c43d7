// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// SiteName is shown in the navigation header, the footer and page titles.
const SiteName = "HomeCare Jobs"

type navLink struct {
	href  string
	label string
}

var navLinks = []navLink{
	{href: "/", label: "Home"},
	{href: "/contact", label: "Contact"},
}

// Header is the navigation bar shared by all pages.
func Header() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="site-header"><nav><a class="brand" href="/">`+
			templ.EscapeString(SiteName)+`</a><ul>`); err != nil {
			return err
		}

		for _, l := range navLinks {
			if _, err := io.WriteString(w, `<li><a href="`+templ.EscapeString(l.href)+`">`+
				templ.EscapeString(l.label)+`</a></li>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</ul></nav></header>`)
		return err
	})
}

// Footer is the page footer shared by all pages.
func Footer() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<footer class="site-footer"><p>`+
			templ.EscapeString(SiteName)+` &middot; Connecting families with trusted home care workers.</p></footer>`)
		return err
	})
}

// Document wraps body in a complete HTML document titled "<title> | SiteName".
func Document(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(title+" | "+SiteName)+`</title></head><body>`); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
