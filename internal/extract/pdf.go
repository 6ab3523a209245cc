package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pdfcpuapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/esdguide/ruletracker/internal/entity"
)

// PDFExtractor recovers rules from PDF reports by concatenating page
// text and running the segmentation fallback chain over it.
type PDFExtractor struct {
	content []byte
	conf    *model.Configuration
}

func NewPDFExtractor(content []byte) (*PDFExtractor, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("empty pdf document")
	}
	conf := model.NewDefaultConfiguration()
	// fail fast on unreadable input instead of inside every capability
	if err := pdfcpuapi.Validate(bytes.NewReader(content), conf); err != nil {
		return nil, fmt.Errorf("validate pdf: %w", err)
	}
	return &PDFExtractor{content: content, conf: conf}, nil
}

func (e *PDFExtractor) ExtractRules(ctx context.Context) ([]entity.ExtractedRule, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	text, err := e.fullText()
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	return SegmentText(text), nil
}

// fullText extracts page content streams through pdfcpu's file-based
// API into a scratch directory, decodes the text-showing operators of
// each stream, and concatenates the pages.
func (e *PDFExtractor) fullText() (string, error) {
	tmpIn, err := os.CreateTemp("", "in-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpIn.Name())
	defer tmpIn.Close()

	if _, err := tmpIn.Write(e.content); err != nil {
		return "", err
	}

	outDir, err := os.MkdirTemp("", "out-pdf")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(outDir)

	if err := pdfcpuapi.ExtractContentFile(tmpIn.Name(), outDir, nil, e.conf); err != nil {
		return "", err
	}

	var b strings.Builder
	err = filepath.Walk(outDir, func(path string, _ os.FileInfo, _ error) error {
		if filepath.Ext(path) == ".txt" {
			if d, err := os.ReadFile(path); err == nil {
				b.WriteString(decodeContentStream(d))
				b.WriteString("\n\n")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

func (e *PDFExtractor) ExtractMetadata(ctx context.Context) (map[string]any, error) {
	metadata := map[string]any{}

	info, err := pdfcpuapi.PDFInfo(bytes.NewReader(e.content), "document.pdf", nil, false, e.conf)
	if err != nil || info == nil {
		return metadata, nil
	}

	if info.Title != "" {
		metadata["title"] = info.Title
	}
	if info.Subject != "" {
		metadata["subject"] = info.Subject
	}
	if info.Author != "" {
		metadata["author"] = info.Author
	}
	if info.Producer != "" {
		metadata["producer"] = info.Producer
	}
	if info.Creator != "" {
		metadata["creator"] = info.Creator
	}
	if info.CreationDate != "" {
		metadata["created"] = strings.TrimPrefix(info.CreationDate, "D:")
	}
	metadata["pages"] = info.PageCount

	return metadata, nil
}

func (e *PDFExtractor) ExtractImages(ctx context.Context) ([]entity.ExtractedImage, error) {
	tmpIn, err := os.CreateTemp("", "in-*.pdf")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmpIn.Name())
	defer tmpIn.Close()

	if _, err := tmpIn.Write(e.content); err != nil {
		return nil, err
	}

	outDir, err := os.MkdirTemp("", "out-pdf-img")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(outDir)

	if err := pdfcpuapi.ExtractImagesFile(tmpIn.Name(), outDir, nil, e.conf); err != nil {
		// image recovery is best-effort; an image-less result is normal
		return nil, nil
	}

	var images []entity.ExtractedImage
	count := 0
	err = filepath.Walk(outDir, func(path string, fi os.FileInfo, _ error) error {
		if fi == nil || fi.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := imageMimeTypes[ext]; !ok {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil || len(data) == 0 {
			return nil
		}
		images = append(images, entity.ExtractedImage{
			Filename: fmt.Sprintf("image_%d%s", count, ext),
			Data:     data,
			MimeType: mimeForExtension(ext),
		})
		count++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return images, nil
}
