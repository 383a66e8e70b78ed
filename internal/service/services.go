package service

import (
	"github.com/MKhiriev/go-story-nook/internal/adapter"
	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/metrics"
	"github.com/MKhiriev/go-story-nook/internal/store"
	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/MKhiriev/go-story-nook/internal/validators"
	"github.com/MKhiriev/go-story-nook/models"
)

type Services struct {
	AuthService          AuthService
	PasswordResetService PasswordResetService
	LibraryService       LibraryService
	BookService          BookService
	BillingService       BillingService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo, clock utils.Clock, recorder metrics.Recorder, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()
	sanitizer := validators.NewSanitizer()
	uuids := utils.NewUUIDGenerator()

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	libraryService := NewLibraryValidationService(validator, sanitizer).
		Wrap(NewLibraryService(storages.LibraryRepository, logger))

	bookService := NewBookValidationService(validator, sanitizer).
		Wrap(NewBookService(storages.LibraryRepository, storages.BookRepository, storages.CoverStorage,
			uuids, cfg.Storage.Covers.MaxSize, logger))

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, validator, clock, recorder, logger),
		PasswordResetService: NewPasswordResetService(storages.UserRepository, adapters.Mail, cfg.App,
			uuids, validator, clock, recorder, logger),
		LibraryService: libraryService,
		BookService:    bookService,
		BillingService: NewBillingService(adapters.Billing, cfg.App, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
