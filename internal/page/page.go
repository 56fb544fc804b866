// Package page renders a static HTML snapshot of the portfolio page.
//
// The snapshot shows the cards as the presenter derives them for a given
// selection, with animation settled. Components are plain templ components
// so they compose with other templ layouts.
package page

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/chille/showcase/internal/catalog"
	"github.com/chille/showcase/internal/presenter"
)

// Options tune the snapshot.
type Options struct {
	Year    int
	Stagger float64 // seconds between card entrance animations
	Reveal  float64 // seconds for the content region transition
}

// DefaultOptions matches the page's timings.
func DefaultOptions(year int) Options {
	return Options{Year: year, Stagger: 0.06, Reveal: 0.3}
}

// Document renders a full HTML document.
func Document(site catalog.Site, cards []presenter.Card, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, esc(site.Name), `</title><style>`, stylesheet(opts), `</style></head><body>`,
		); err != nil {
			return err
		}
		parts := []templ.Component{
			Header(site),
			Featured(cards, opts),
			SkillsSection(site.Skills),
			ContactSection(site.Contact),
			Footer(site.Name, opts.Year),
		}
		if err := write(w, `<main>`); err != nil {
			return err
		}
		for _, p := range parts {
			if err := p.Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, `</main></body></html>`)
	})
}

func Header(site catalog.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<header><nav><div class="brand">`, esc(site.Name), `</div>`,
			`<div class="links"><a href="#projects">Featured</a><a href="#skills">Skills</a><a href="#contact">Contact</a></div></nav>`,
			`<section class="hero"><h1>`, esc(site.Heading), `<span>`, esc(site.Tagline), `</span></h1>`,
			`<p>`, esc(site.Intro), `</p></section></header>`,
		)
	})
}

// Featured renders the card grid.
func Featured(cards []presenter.Card, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<section id="projects"><h2>Featured Skripts</h2>`,
			`<p class="sub">Only showing working &amp; complex systems, ready to drop into a modern server stack.</p>`,
			`<div class="grid">`,
		); err != nil {
			return err
		}
		for _, c := range cards {
			if err := Card(c, opts).Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, `</div></section>`)
	})
}

// Card renders one card. The content block is present only when the
// presenter materialized it.
func Card(c presenter.Card, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		state := "collapsed"
		if c.Expanded {
			state = "expanded"
		}
		if err := write(w,
			fmt.Sprintf(`<article class="card" id="item-%d" data-state="%s" style="animation-delay:%.2fs">`, c.ID, state, float64(c.Index)*opts.Stagger),
			`<h3>`, esc(c.Summary.Title), `</h3><p class="desc">`, esc(c.Summary.Description), `</p><ul>`,
		); err != nil {
			return err
		}
		for _, f := range c.Summary.Features {
			if err := write(w, `<li><span class="check">✓</span><span>`, esc(f), `</span></li>`); err != nil {
				return err
			}
		}
		if err := write(w,
			`</ul><div class="actions">`,
			fmt.Sprintf(`<a class="button" href="#item-%d" aria-expanded="%t">`, c.ID, c.Expanded), esc(c.Action), `</a>`,
			`<div class="badge">`, esc(c.Badge), `</div></div>`,
		); err != nil {
			return err
		}
		if c.Content != nil {
			if err := write(w, `<div class="content"><div class="preview">`); err != nil {
				return err
			}
			var err error
			if c.Content.Placeholder {
				err = write(w, `<div class="placeholder">No preview available</div>`)
			} else {
				err = write(w, `<img src="`, esc(c.Content.MediaRef), `" alt="`, esc(c.Content.Alt), `">`)
			}
			if err != nil {
				return err
			}
			if err := write(w, `</div></div>`); err != nil {
				return err
			}
		}
		return write(w, `</article>`)
	})
}

func SkillsSection(skills []catalog.Skill) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<section id="skills"><h2>Skills &amp; Tools</h2><div class="skills">`); err != nil {
			return err
		}
		for _, s := range skills {
			if err := write(w, `<div class="skill"><h4>`, esc(s.Name), `</h4><p>`, esc(s.Summary), `</p></div>`); err != nil {
				return err
			}
		}
		return write(w, `</div></section>`)
	})
}

func ContactSection(c catalog.Contact) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<section id="contact"><h2>Contact</h2><p class="sub">`, esc(c.Blurb), `</p>`,
			`<div class="channel">`, esc(c.Channel), `</div><div class="handle">`, esc(c.Handle), `</div></section>`,
		)
	})
}

func Footer(name string, year int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w, fmt.Sprintf(`<footer>© %d `, year), esc(name), `</footer>`)
	})
}

// Render writes the document to w.
func Render(ctx context.Context, w io.Writer, site catalog.Site, cards []presenter.Card, opts Options) error {
	return Document(site, cards, opts).Render(ctx, w)
}

func esc(s string) string { return templ.EscapeString(s) }

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}

func stylesheet(opts Options) string {
	var b strings.Builder
	b.WriteString(`body{margin:0;min-height:100vh;background:linear-gradient(#be185d,#9333ea,#581c87);color:#f1f5f9;font-family:system-ui,sans-serif}`)
	b.WriteString(`main{max-width:72rem;margin:0 auto;padding:0 1.5rem 5rem}nav{display:flex;justify-content:space-between;padding:2.5rem 0}`)
	b.WriteString(`.brand{font-size:1.5rem;font-weight:800}.links a{margin-left:1rem;color:inherit}h1 span{display:block;font-size:1.25rem;margin-top:1rem}`)
	b.WriteString(`.grid{display:grid;gap:1.5rem;grid-template-columns:repeat(auto-fit,minmax(18rem,1fr))}`)
	b.WriteString(`.card{border-radius:1rem;padding:1.25rem;background:rgba(255,255,255,.05);border:1px solid rgba(255,255,255,.06);animation:enter .4s both}`)
	b.WriteString(`@keyframes enter{from{opacity:0;transform:translateY(10px)}to{opacity:1;transform:none}}`)
	b.WriteString(`.actions{display:flex;justify-content:space-between;align-items:center;margin-top:1rem}.badge{font-size:.75rem;opacity:.8}`)
	b.WriteString(`.button{padding:.5rem 1rem;border-radius:.375rem;background:rgba(255,255,255,.06);color:inherit;text-decoration:none}`)
	fmt.Fprintf(&b, `.content{margin-top:1rem;overflow:hidden;animation:reveal %.2fs both}`, opts.Reveal)
	b.WriteString(`@keyframes reveal{from{max-height:0;opacity:0}to{max-height:40rem;opacity:1}}`)
	b.WriteString(`.preview{border-radius:.75rem;border:1px solid rgba(255,255,255,.1);padding:.75rem;text-align:center}.preview img{max-width:100%;border-radius:.375rem}`)
	b.WriteString(`.skills{display:grid;gap:1.5rem;grid-template-columns:repeat(auto-fit,minmax(18rem,1fr))}footer{margin-top:4rem;text-align:center;opacity:.8}`)
	return b.String()
}
