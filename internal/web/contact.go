// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ContactEmail is the support address published on the contact page.
const ContactEmail = "homecarejobbd.help@gmail.com"

const (
	contactTitle   = "Contact Us"
	contactMessage = "Have a question about a job posting or need help with your account? Email us at "
	contactClosing = " and we will get back to you as soon as we can."
)

// ContactPage renders the navigation header, the contact message and the
// footer. The address appears in the output once, as plain text.
func ContactPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := Header().Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main class="contact"><h1>`+templ.EscapeString(contactTitle)+`</h1><p>`+
			templ.EscapeString(contactMessage)+`<strong>`+templ.EscapeString(ContactEmail)+`</strong>`+
			templ.EscapeString(contactClosing)+`</p></main>`); err != nil {
			return err
		}

		return Footer().Render(ctx, w)
	})
}

// ContactDocument is [ContactPage] wrapped in a full HTML document.
func ContactDocument() templ.Component {
	return Document(contactTitle, ContactPage())
}
