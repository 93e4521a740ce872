// Package blog loads post metadata from a directory of front-mattered
// markdown files, the working copy of the Git-backed CMS. Posts feed the
// aggregation pipeline as one more static-like content set.
package blog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pulsefeed/pulsefeed/internal/normalize"
	"github.com/pulsefeed/pulsefeed/pkg/models"
	"gopkg.in/yaml.v3"
)

// frontMatter is the yaml header of a post file.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Tags        []string `yaml:"tags"`
}

// Post is one parsed CMS entry.
type Post struct {
	Slug        string
	Title       string
	Description string
	Date        string
	Tags        []string
	Body        string
}

// Loader reads posts from a directory.
type Loader struct {
	dir     string
	baseURL string
}

// NewLoader creates a post loader rooted at dir. baseURL prefixes the
// canonical post links.
func NewLoader(dir, baseURL string) *Loader {
	if baseURL == "" {
		baseURL = "https://pulsefeed.dev/blog"
	}
	return &Loader{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Load parses every .md file in the posts directory. Files that fail to
// parse are skipped with a diagnostic; a missing directory is an error.
func (l *Loader) Load() ([]Post, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read posts dir: %w", err)
	}

	var posts []Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		post, err := l.parseFile(filepath.Join(l.dir, entry.Name()))
		if err != nil {
			slog.Debug("skipping post", "file", entry.Name(), "error", err)
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (l *Loader) parseFile(path string) (Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}

	meta, body, err := splitFrontMatter(string(data))
	if err != nil {
		return Post{}, err
	}
	if meta.Title == "" {
		meta.Title = ExtractHeading(body)
	}
	if meta.Title == "" {
		return Post{}, fmt.Errorf("post has no title")
	}
	if LooksLikeHTML(body) {
		return Post{}, fmt.Errorf("post body is HTML, expected markdown")
	}

	slug := strings.TrimSuffix(filepath.Base(path), ".md")
	return Post{
		Slug:        slug,
		Title:       meta.Title,
		Description: meta.Description,
		Date:        meta.Date,
		Tags:        meta.Tags,
		Body:        body,
	}, nil
}

// splitFrontMatter separates the leading "---" delimited yaml block from
// the post body.
func splitFrontMatter(content string) (frontMatter, string, error) {
	var meta frontMatter

	trimmed := strings.TrimLeft(content, "\ufeff\n\r ")
	if !strings.HasPrefix(trimmed, "---") {
		return meta, "", fmt.Errorf("missing front matter")
	}

	rest := strings.TrimPrefix(trimmed, "---")
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return meta, "", fmt.Errorf("unterminated front matter")
	}

	if err := yaml.Unmarshal([]byte(rest[:idx]), &meta); err != nil {
		return meta, "", fmt.Errorf("failed to parse front matter: %w", err)
	}

	body := rest[idx+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	return meta, strings.TrimSpace(body), nil
}

// Posts implements aggregate.PostLoader: each post becomes a blog-kind
// content item. Posts with unparseable dates are dropped like any other
// record with corrupt provenance.
func (l *Loader) Posts(ctx context.Context) ([]models.ContentItem, error) {
	posts, err := l.Load()
	if err != nil {
		return nil, err
	}

	items := make([]models.ContentItem, 0, len(posts))
	for _, post := range posts {
		date, granularity, ok := normalize.ParseDate(post.Date)
		if !ok {
			slog.Debug("skipping post with unparseable date", "slug", post.Slug, "date", post.Date)
			continue
		}
		// A plain-text body can stand in for a missing description;
		// markdown-formatted bodies would leak syntax into the digest.
		description := post.Description
		if description == "" && !HasMarkdownPatterns(post.Body) {
			description = post.Body
		}
		url := l.baseURL + "/" + post.Slug
		items = append(items, models.ContentItem{
			ID:          models.ItemID(models.SourceBlog, "", url, post.Title, date),
			Title:       post.Title,
			Description: normalize.Description(description),
			URL:         url,
			Date:        date,
			Granularity: granularity,
			Source:      models.SourceBlog,
			Tags:        post.Tags,
		})
	}
	return items, nil
}
