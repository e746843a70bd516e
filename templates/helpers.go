package templates

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	g "github.com/maragudk/gomponents"
	"gorm.io/datatypes"
)

func renderMarkdown(markdownStr string) g.Node {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(markdownStr))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	rendered := markdown.Render(doc, renderer)

	return g.Raw(string(rendered))
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format("January 2, 2006")
}

// gravatarURL derives a commenter's avatar image from their email.
func gravatarURL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=retro&s=%d",
		md5.Sum([]byte(normalized)), size)
}
