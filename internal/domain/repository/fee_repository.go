package repository

import "github.com/dvergara/Tributario-api/internal/domain/entity"

// FeeScheduleRepository carga el tarifario vigente. Las filas de la tabla
// fee_schedule sobreescriben los defaults de configuración; el motor recibe
// el resultado como tabla de solo lectura.
type FeeScheduleRepository interface {
	Load(defaults entity.FeeSchedule) (entity.FeeSchedule, error)
}
