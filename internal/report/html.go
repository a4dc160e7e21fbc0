package report

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/yuin/goldmark"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

var md = goldmark.New()

var pageTemplate = template.Must(template.New("register").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: "Helvetica", "Arial", sans-serif; margin: 2cm; color: #222; }
  h1 { font-size: 20pt; border-bottom: 2px solid #444; padding-bottom: 4pt; }
  h2 { font-size: 13pt; margin-top: 18pt; color: #444; }
  ul { padding-left: 14pt; }
  li { margin: 2pt 0; font-size: 11pt; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTMLRenderer renders the page as styled HTML and prints it with headless
// Chromium. It fails when the browser or its driver is not installed.
type HTMLRenderer struct {
	timeout time.Duration
	start   func() (printSession, error)
}

// printSession is a running browser driver. Stop releases it and aborts any
// Print in flight.
type printSession interface {
	Print(doc string) ([]byte, error)
	Stop() error
}

// NewHTMLRenderer creates an HTMLRenderer. timeout bounds browser startup and printing.
func NewHTMLRenderer(timeout time.Duration) *HTMLRenderer {
	return &HTMLRenderer{
		timeout: timeout,
		start:   func() (printSession, error) { return startPlaywright(timeout) },
	}
}

// Render implements Renderer. The driver is stopped on every path, including
// when ctx or the timeout ends the wait first.
func (r *HTMLRenderer) Render(ctx context.Context, s domain.RegisterSummary) ([]byte, error) {
	doc, err := HTML(NewPage(s))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		pdf []byte
		err error
	}
	sessions := make(chan printSession, 1)
	done := make(chan result, 1)
	go func() {
		sess, err := r.start()
		if err != nil {
			done <- result{err: err}
			return
		}
		sessions <- sess
		pdf, err := sess.Print(doc)
		done <- result{pdf, err}
	}()

	var sess printSession
	for {
		select {
		case sess = <-sessions:
		case res := <-done:
			if sess == nil {
				select {
				case sess = <-sessions:
				default:
				}
			}
			if sess != nil {
				_ = sess.Stop()
			}
			return res.pdf, res.err
		case <-ctx.Done():
			if sess != nil {
				_ = sess.Stop()
			} else {
				// Still starting: stop the driver once it is up.
				go func() {
					select {
					case late := <-sessions:
						_ = late.Stop()
					case <-done:
					}
				}()
			}
			return nil, fmt.Errorf("print html: %w", ctx.Err())
		}
	}
}

type playwrightSession struct {
	pw      *playwright.Playwright
	timeout time.Duration
}

func startPlaywright(timeout time.Duration) (*playwrightSession, error) {
	pw, err := playwright.Run(&playwright.RunOptions{SkipInstallBrowsers: true, Verbose: false})
	if err != nil {
		return nil, fmt.Errorf("playwright run: %w", err)
	}
	return &playwrightSession{pw: pw, timeout: timeout}, nil
}

func (p *playwrightSession) Stop() error { return p.pw.Stop() }

func (p *playwrightSession) Print(doc string) ([]byte, error) {
	browser, err := p.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Timeout:  playwright.Float(float64(p.timeout.Milliseconds())),
	})
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	if err := page.SetContent(doc, playwright.PageSetContentOptions{WaitUntil: playwright.WaitUntilStateLoad}); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}

	pdf, err := page.PDF(playwright.PagePdfOptions{
		Format:          playwright.String("A4"),
		PrintBackground: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return pdf, nil
}

// Markdown returns the page as a markdown document.
func Markdown(p Page) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(p.Title))
	section := func(heading string, lines []string) {
		fmt.Fprintf(&b, "## %s\n\n", heading)
		for _, l := range lines {
			fmt.Fprintf(&b, "- %s\n", escapeMarkdown(l))
		}
		b.WriteString("\n")
	}
	section(scheduleHeading, p.Schedule)
	section(documentsHeading, p.Documents)
	if p.Footer != "" {
		fmt.Fprintf(&b, "---\n\n*%s*\n", escapeMarkdown(p.Footer))
	}
	return b.String()
}

// HTML renders the page markdown into the styled HTML document.
func HTML(p Page) (string, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(p)), &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	var out bytes.Buffer
	err := pageTemplate.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{Title: p.Title, Body: template.HTML(body.String())})
	if err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return out.String(), nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`, `[`, `\[`, `]`, `\]`,
	`#`, `\#`, `<`, `\<`, `>`, `\>`, `!`, `\!`, `|`, `\|`,
)

// escapeMarkdown keeps user text literal.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
