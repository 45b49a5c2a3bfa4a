package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/docgen"
	"github.com/flowpro-systems/field_service_app/internal/dto"
	"github.com/flowpro-systems/field_service_app/internal/handlers"
	"github.com/flowpro-systems/field_service_app/internal/middleware"
)

// --- Mock JobService ---
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) CreateJob(ctx context.Context, req dto.CreateJobRequest, creatorUserID string) (*domain.Job, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) GetJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) ListJobs(ctx context.Context, params dto.ListJobsParams) ([]domain.Job, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobService) UpdateJob(ctx context.Context, jobID string, req dto.UpdateJobRequest, requestingUserID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) ArchiveJob(ctx context.Context, jobID string, requestingUserID string) error {
	args := m.Called(ctx, jobID, requestingUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.JobSvcFacade = (*MockJobService)(nil)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) GeneratePDF(ctx context.Context, jobID string, docType string) (*docgen.Artifact, error) {
	args := m.Called(ctx, jobID, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docgen.Artifact), args.Error(1)
}
func (m *MockDocumentService) GenerateFromTemplate(ctx context.Context, jobID string, templateID string) (*docgen.Artifact, error) {
	args := m.Called(ctx, jobID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docgen.Artifact), args.Error(1)
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Test Suite ---
type JobHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockJobService      *MockJobService
	mockDocumentService *MockDocumentService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *JobHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fsa-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *JobHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockJobService = new(MockJobService)
	suite.mockDocumentService = new(MockDocumentService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterJobRoutes(v1, suite.mockJobService, suite.mockDocumentService)
}

func TestJobHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}

func (suite *JobHandlerTestSuite) authedRequest(method, url string, body []byte, userID string) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	return req
}

// --- Test Cases ---

func (suite *JobHandlerTestSuite) TestCreateJob_Success() {
	userID := uuid.NewString()
	customerID := uuid.NewString()

	expectedJob := &domain.Job{
		JobID:     uuid.NewString(),
		JobNumber: 1000,
		Title:     "Replace hot water system",
		Status:    domain.JobStatusQuote,
		Revenue:   decimal.NewFromInt(1800),
	}

	suite.mockJobService.On("CreateJob",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateJobRequest) bool {
			return req.Title == "Replace hot water system" && req.CustomerID == customerID
		}),
		userID,
	).Return(expectedJob, nil).Once()

	body, _ := json.Marshal(gin.H{
		"title":      "Replace hot water system",
		"customerID": customerID,
		"revenue":    "1800",
	})
	req := suite.authedRequest(http.MethodPost, "/api/v1/jobs", body, userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.JobResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1000), resp.JobNumber)
	suite.Equal(domain.JobStatusQuote, resp.Status)
	suite.mockJobService.AssertExpectations(suite.T())
}

func (suite *JobHandlerTestSuite) TestCreateJob_WithoutCustomer() {
	userID := uuid.NewString()

	expectedJob := &domain.Job{
		JobID:     uuid.NewString(),
		JobNumber: 1003,
		Title:     "Walk-in repair",
		Status:    domain.JobStatusQuote,
	}

	suite.mockJobService.On("CreateJob",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateJobRequest) bool {
			return req.Title == "Walk-in repair" && req.CustomerID == ""
		}),
		userID,
	).Return(expectedJob, nil).Once()

	body, _ := json.Marshal(gin.H{"title": "Walk-in repair"})
	req := suite.authedRequest(http.MethodPost, "/api/v1/jobs", body, userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code, "jobs without a customer must be accepted")
	suite.mockJobService.AssertExpectations(suite.T())
}

func (suite *JobHandlerTestSuite) TestCreateJob_UnknownCustomer() {
	userID := uuid.NewString()

	suite.mockJobService.On("CreateJob", mock.Anything, mock.Anything, userID).
		Return(nil, apperrors.ErrValidation).Once()

	body, _ := json.Marshal(gin.H{
		"title":      "Job",
		"customerID": uuid.NewString(),
	})
	req := suite.authedRequest(http.MethodPost, "/api/v1/jobs", body, userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *JobHandlerTestSuite) TestCreateJob_RejectsUnknownStatus() {
	userID := uuid.NewString()

	body, _ := json.Marshal(gin.H{
		"title":      "Job",
		"customerID": uuid.NewString(),
		"status":     "PENDING",
	})
	req := suite.authedRequest(http.MethodPost, "/api/v1/jobs", body, userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJobService.AssertNotCalled(suite.T(), "CreateJob", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JobHandlerTestSuite) TestGetJob_NotFound() {
	userID := uuid.NewString()
	jobID := uuid.NewString()

	suite.mockJobService.On("GetJobByID", mock.Anything, jobID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/jobs/"+jobID, nil, userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JobHandlerTestSuite) TestListJobs_PassesQueryParams() {
	userID := uuid.NewString()

	suite.mockJobService.On("ListJobs", mock.Anything,
		mock.MatchedBy(func(p dto.ListJobsParams) bool {
			return p.Status == "QUOTE" && p.Limit == 10 && !p.IncludeArchived
		}),
	).Return([]domain.Job{{JobID: uuid.NewString(), Status: domain.JobStatusQuote}}, nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/jobs?status=QUOTE&limit=10", nil, userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListJobsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Jobs, 1)
}

func (suite *JobHandlerTestSuite) TestListJobs_RequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *JobHandlerTestSuite) TestGenerateDocument_ServesAttachment() {
	userID := uuid.NewString()
	jobID := uuid.NewString()

	artifact := &docgen.Artifact{
		FileName: "TAX_INVOICE_1042_Acme_Pty_Ltd.pdf",
		MIME:     docgen.MIMEPDF,
		Bytes:    []byte("%PDF-1.3 fake"),
	}
	suite.mockDocumentService.On("GeneratePDF", mock.Anything, jobID, "invoice").
		Return(artifact, nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/jobs/"+jobID+"/documents/invoice", nil, userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(docgen.MIMEPDF, w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="TAX_INVOICE_1042_Acme_Pty_Ltd.pdf"`, w.Header().Get("Content-Disposition"))
	suite.Equal(artifact.Bytes, w.Body.Bytes())
}

func (suite *JobHandlerTestSuite) TestGenerateFromTemplate_BrokenTemplate() {
	userID := uuid.NewString()
	jobID := uuid.NewString()
	templateID := uuid.NewString()

	suite.mockDocumentService.On("GenerateFromTemplate", mock.Anything, jobID, templateID).
		Return(nil, docgen.ErrTemplateContent).Once()

	req := suite.authedRequest(http.MethodPost, "/api/v1/jobs/"+jobID+"/documents/from-template/"+templateID, nil, userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *JobHandlerTestSuite) TestArchiveJob_Success() {
	userID := uuid.NewString()
	jobID := uuid.NewString()

	suite.mockJobService.On("ArchiveJob", mock.Anything, jobID, userID).
		Return(nil).Once()

	req := suite.authedRequest(http.MethodPost, "/api/v1/jobs/"+jobID+"/archive", nil, userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockJobService.AssertExpectations(suite.T())
}
