package services_test

import (
	"context"
	"testing"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/core/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDocumentRepository
	service  portssvc.DocumentSvcFacade
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDocumentRepository)
	suite.service = services.NewDocumentService(suite.mockRepo)
}

func (suite *DocumentServiceTestSuite) TestUploadFile_Success() {
	ctx := context.Background()
	file := dto.FileUpload{FileName: "passport.pdf", FileType: "application/pdf", FileSize: 1 << 20}

	suite.mockRepo.On("SaveDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.ResidentID == 4 && d.FileName == "passport.pdf" && d.Category == domain.DocumentIdentification
	})).Return(int64(9), nil).Once()

	var progress []float64
	doc, err := suite.service.UploadFile(ctx, 4, domain.DocumentIdentification, file, func(percent float64) {
		progress = append(progress, percent)
	})

	suite.Require().NoError(err)
	suite.Equal(int64(9), doc.ID)
	suite.NotEmpty(doc.FilePath)
	suite.Require().NotEmpty(progress)
	suite.Equal(float64(100), progress[len(progress)-1])
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestUploadFile_TooLarge() {
	ctx := context.Background()
	file := dto.FileUpload{FileName: "scan.pdf", FileType: "application/pdf", FileSize: 11 << 20}

	doc, err := suite.service.UploadFile(ctx, 4, domain.DocumentIdentification, file, nil)

	suite.Require().Error(err)
	suite.Nil(doc)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestUploadFile_DangerousExtension() {
	ctx := context.Background()
	// Declared MIME type is allowed but the extension is not.
	file := dto.FileUpload{FileName: "invoice.exe", FileType: "application/pdf", FileSize: 1024}

	doc, err := suite.service.UploadFile(ctx, 4, domain.DocumentFinancial, file, nil)

	suite.Require().Error(err)
	suite.Nil(doc)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DocumentServiceTestSuite) TestUploadFile_DisallowedType() {
	ctx := context.Background()
	file := dto.FileUpload{FileName: "archive.zip", FileType: "application/zip", FileSize: 1024}

	doc, err := suite.service.UploadFile(ctx, 4, domain.DocumentOther, file, nil)

	suite.Require().Error(err)
	suite.Nil(doc)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DocumentServiceTestSuite) TestUploadMultipleFiles_PartialFailure() {
	ctx := context.Background()
	files := []dto.FileUpload{
		{FileName: "lease.pdf", FileType: "application/pdf", FileSize: 2048},
		{FileName: "virus.exe", FileType: "application/pdf", FileSize: 512},
	}

	suite.mockRepo.On("SaveDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.FileName == "lease.pdf"
	})).Return(int64(1), nil).Once()

	results, err := suite.service.UploadMultipleFiles(ctx, 4, domain.DocumentContract, files, nil)

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.NotNil(results[0].Document)
	suite.Empty(results[0].Error)
	suite.Nil(results[1].Document)
	suite.NotEmpty(results[1].Error)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestSearchDocuments_MatchesNameAndCategory() {
	ctx := context.Background()
	docs := []domain.Document{
		{ID: 1, FileName: "passport.pdf", Category: domain.DocumentIdentification},
		{ID: 2, FileName: "lease.pdf", Category: domain.DocumentContract},
		{ID: 3, FileName: "receipt.png", Category: domain.DocumentFinancial},
	}

	suite.mockRepo.On("ListDocuments", ctx).Return(docs, nil).Once()

	got, err := suite.service.SearchDocuments(ctx, "CONTRACT")

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal(int64(2), got[0].ID)
}

func (suite *DocumentServiceTestSuite) TestGetDocumentStats() {
	ctx := context.Background()
	docs := []domain.Document{
		{ID: 1, ResidentID: 4, FileName: "passport.pdf", Category: domain.DocumentIdentification, FileSize: 100},
		{ID: 2, ResidentID: 4, FileName: "lease.pdf", Category: domain.DocumentContract, FileSize: 200},
		{ID: 3, ResidentID: 7, FileName: "id.png", Category: domain.DocumentIdentification, FileSize: 50},
	}

	suite.mockRepo.On("ListDocuments", ctx).Return(docs, nil).Once()

	stats, err := suite.service.GetDocumentStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(3, stats.Total)
	suite.Equal(int64(350), stats.TotalSize)
	suite.Equal(2, stats.ByCategory[domain.DocumentIdentification])
	suite.Equal(2, stats.ByResident[4])
	suite.Equal(1, stats.ByResident[7])
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
