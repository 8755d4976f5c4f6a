package service

import (
	"errors"

	"fiscalmanager/internal/apierror"

	"gorm.io/gorm"
)

// storageErr translates a repository failure into the API taxonomy:
// a missing record becomes NotFound with the given detail, anything else
// is surfaced as a transient storage error (never retried here).
func storageErr(err error, notFoundDetail string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(notFoundDetail)
	}
	return apierror.Transient("Falha de armazenamento: " + err.Error())
}
