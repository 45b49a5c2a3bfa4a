package services_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/core/services"
	"github.com/flowpro-systems/field_service_app/internal/docgen"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	jobRepo      *MockJobRepository
	templateRepo *MockDocTemplateRepository
	service      portssvc.DocumentSvcFacade
	ctx          context.Context
}

func (s *DocumentServiceTestSuite) SetupTest() {
	s.jobRepo = new(MockJobRepository)
	s.templateRepo = new(MockDocTemplateRepository)
	s.service = services.NewDocumentService(s.jobRepo, s.templateRepo, nil)
	s.ctx = context.Background()
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}

func (s *DocumentServiceTestSuite) storedJob() *domain.Job {
	return &domain.Job{
		JobID:     "job-1",
		JobNumber: 1042,
		Title:     "Replace hot water system",
		Status:    domain.JobStatusQuote,
		Revenue:   decimal.NewFromFloat(1850.50),
		Costs:     decimal.NewFromInt(640),
		Customer:  &domain.Customer{Name: "Acme Pty Ltd", Email: "ops@acme.example"},
	}
}

// minimalTemplate builds a tiny DOCX-shaped package and base64 encodes it.
func (s *DocumentServiceTestSuite) minimalTemplate() string {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(s.T(), err)
	_, err = w.Write([]byte(`<w:document><w:t>{title} for {name}</w:t></w:document>`))
	require.NoError(s.T(), err)
	require.NoError(s.T(), zw.Close())
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func (s *DocumentServiceTestSuite) TestGeneratePDFReturnsArtifact() {
	s.jobRepo.On("FindJobByID", s.ctx, "job-1").Return(s.storedJob(), nil)

	artifact, err := s.service.GeneratePDF(s.ctx, "job-1", "invoice")

	s.NoError(err)
	s.Equal(docgen.MIMEPDF, artifact.MIME)
	s.True(strings.HasPrefix(artifact.FileName, "TAX_INVOICE_1042_"), "file name carries title and job number, got %s", artifact.FileName)
	s.True(bytes.HasPrefix(artifact.Bytes, []byte("%PDF")))
}

func (s *DocumentServiceTestSuite) TestGeneratePDFUnknownJob() {
	s.jobRepo.On("FindJobByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	artifact, err := s.service.GeneratePDF(s.ctx, "ghost", "quote")

	s.Nil(artifact)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *DocumentServiceTestSuite) TestGenerateFromTemplateFillsPlaceholders() {
	s.jobRepo.On("FindJobByID", s.ctx, "job-1").Return(s.storedJob(), nil)
	s.templateRepo.On("FindTemplateByID", s.ctx, "tpl-1").Return(&domain.DocTemplate{
		TemplateID: "tpl-1",
		Name:       "Quote.docx",
		Content:    s.minimalTemplate(),
	}, nil)

	artifact, err := s.service.GenerateFromTemplate(s.ctx, "job-1", "tpl-1")

	s.NoError(err)
	s.Equal(docgen.MIMEDocx, artifact.MIME)
	s.Equal("1042_Quote.docx", artifact.FileName)

	zr, err := zip.NewReader(bytes.NewReader(artifact.Bytes), int64(len(artifact.Bytes)))
	s.NoError(err)
	rc, err := zr.File[0].Open()
	s.NoError(err)
	defer rc.Close()
	data := make([]byte, 4096)
	n, _ := rc.Read(data)
	s.Contains(string(data[:n]), "Replace hot water system for Acme Pty Ltd")
}

func (s *DocumentServiceTestSuite) TestGenerateFromTemplateBrokenContent() {
	s.jobRepo.On("FindJobByID", s.ctx, "job-1").Return(s.storedJob(), nil)
	s.templateRepo.On("FindTemplateByID", s.ctx, "tpl-1").Return(&domain.DocTemplate{
		TemplateID: "tpl-1",
		Name:       "bad.docx",
		Content:    "%%% not base64 %%%",
	}, nil)

	artifact, err := s.service.GenerateFromTemplate(s.ctx, "job-1", "tpl-1")

	s.Nil(artifact)
	s.ErrorIs(err, docgen.ErrTemplateContent)
}
