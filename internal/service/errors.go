package service

import "errors"

// Ошибки бизнес-логики. Проверяются через errors.Is.
var (
	// ErrInvalidArgument - некорректное значение от вызывающей стороны
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound - запись не найдена
	ErrNotFound = errors.New("not found")
	// ErrPersistence - сбой хранилища при чтении или записи
	ErrPersistence = errors.New("persistence failure")
	// ErrReportGeneration - не удалось построить отчет
	ErrReportGeneration = errors.New("report generation failed")
)
