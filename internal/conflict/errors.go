package conflict

import "errors"

var (
	// ErrUnknownStrategy стратегия разрешения не распознана
	ErrUnknownStrategy = errors.New("unknown resolution strategy")

	// ErrRemoteDataMissing use_remote при отсутствующих удаленных данных
	ErrRemoteDataMissing = errors.New("remote data is not available for this conflict")

	// ErrManualDataMissing manual без manualData
	ErrManualDataMissing = errors.New("manual resolution requires manual data")
)
