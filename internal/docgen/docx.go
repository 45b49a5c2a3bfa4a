package docgen

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// Placeholder tokens recognized inside templates, written as {token} in the
// authored document. Case sensitive.
var placeholderKeys = []string{
	"title", "job_number", "revenue", "costs", "current_date",
	"name", "email", "phone", "address", "notes",
}

// ComposeFromTemplate fills the stored DOCX template with values drawn from
// the job and its customer, and re-emits it as a binary artifact named
// <JobNumber>_<TemplateName>. Placeholders with no corresponding value are
// replaced with an empty string, never left as literal tokens. Any failure is
// returned as a single error with no partial output.
func ComposeFromTemplate(tpl domain.DocTemplate, job domain.Job) (*Artifact, error) {
	raw, err := decodeTemplateContent(tpl.Content)
	if err != nil {
		return nil, err
	}

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("open template package: %w", err)
	}

	replacer := placeholderReplacer(job)

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("read template entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(io.LimitReader(rc, MaxTemplateBytes+1))
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read template entry %s: %w", f.Name, err)
		}
		if len(data) > MaxTemplateBytes {
			return nil, ErrTemplateTooLarge
		}

		if strings.HasSuffix(f.Name, ".xml") || strings.HasSuffix(f.Name, ".rels") {
			data = []byte(replacer.Replace(string(data)))
		}

		header := f.FileHeader
		w, err := zw.CreateHeader(&header)
		if err != nil {
			return nil, fmt.Errorf("rebuild template entry %s: %w", f.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("rebuild template entry %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize document package: %w", err)
	}

	fileName := SanitizeFileName(fmt.Sprintf("%d_%s", job.JobNumber, tpl.Name))
	return &Artifact{FileName: fileName, MIME: MIMEDocx, Bytes: out.Bytes()}, nil
}

// ValidateTemplateContent checks that uploaded content decodes to a zip
// package without storing or rendering it. Used at template upload time so a
// broken file is rejected before it reaches the generation path.
func ValidateTemplateContent(content string) error {
	raw, err := decodeTemplateContent(content)
	if err != nil {
		return err
	}
	if _, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw))); err != nil {
		return fmt.Errorf("%w: not a document package: %s", ErrTemplateContent, err)
	}
	return nil
}

// decodeTemplateContent normalizes the stored content (raw base64 or a
// data-URI with a "data:...;base64," prefix) and decodes it to bytes.
func decodeTemplateContent(content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrTemplateContent
	}
	if i := strings.Index(content, ","); i >= 0 {
		content = content[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateContent, err)
	}
	if len(raw) > MaxTemplateBytes {
		return nil, ErrTemplateTooLarge
	}
	return raw, nil
}

// placeholderValues builds the explicit token -> value mapping. Every
// recognized key is present so substitution failure modes stay enumerable.
func placeholderValues(job domain.Job) map[string]string {
	values := map[string]string{
		"title":        job.Title,
		"job_number":   strconv.FormatInt(job.JobNumber, 10),
		"revenue":      job.Revenue.StringFixed(2),
		"costs":        job.Costs.StringFixed(2),
		"current_date": time.Now().Format("02/01/2006"),
		"notes":        job.Notes,
	}
	if c := job.Customer; c != nil {
		values["name"] = c.Name
		values["email"] = c.Email
		values["phone"] = c.Phone
		values["address"] = c.Address
	}
	for _, key := range placeholderKeys {
		if _, ok := values[key]; !ok {
			values[key] = ""
		}
	}
	return values
}

func placeholderReplacer(job domain.Job) *strings.Replacer {
	values := placeholderValues(job)
	pairs := make([]string, 0, 2*len(values))
	for key, value := range values {
		pairs = append(pairs, "{"+key+"}", xmlEscape(value))
	}
	return strings.NewReplacer(pairs...)
}

// xmlEscape keeps substituted user text from breaking the package XML.
func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
