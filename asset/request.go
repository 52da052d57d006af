package asset

import "fmt"

// Request carries the semantic content of one social asset. Content is the
// only required field; everything else degrades gracefully when absent.
type Request struct {
	Content   string   `json:"content"`
	Title     string   `json:"title,omitempty"`
	BrandName string   `json:"brandName,omitempty"`
	Hashtags  []string `json:"hashtags,omitempty"`
	Format    Format   `json:"format"`
}

// Validate enforces the caller-level precondition that body copy exists.
func (r Request) Validate() error {
	if r.Content == "" {
		return fmt.Errorf("asset request needs body content")
	}
	return nil
}

// Encoding names the raster encoding of a rendered asset.
type Encoding string

const (
	PNG  Encoding = "png"
	JPEG Encoding = "jpeg"
)

// Rendered is the ephemeral output of one render: encoded image bytes plus
// the format and pixel dimensions that produced them. The caller decides
// whether to present or deliver it; nothing here is persisted.
type Rendered struct {
	Data     []byte
	Format   Format
	Width    int
	Height   int
	Encoding Encoding
}
