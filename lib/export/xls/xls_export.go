package xlsexport

import (
	"bytes"
	"time"

	dbmodels "hr-access-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportSolicitudList(list []dbmodels.SolicitudAcces) (*bytes.Buffer, error)
	ExportChecklistList(list []dbmodels.ChecklistInstance) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const dateFormat = "02/01/2006"

var solicitudHeaders = []string{"Codi", "Empleat", "Sol·licitant", "Tipus", "Estat", "Data creació", "Data resolució", "Sistemes"}

func (i impl) ExportSolicitudList(list []dbmodels.SolicitudAcces) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error closing xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, solicitudHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx header")
	}
	if len(list) != 0 {
		row, err = writeSolicitudData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "error writing xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Sol·licituds")
	return f.WriteToBuffer()
}

func writeSolicitudData(f *excelize.File, sheet string, list []dbmodels.SolicitudAcces, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(solicitudHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Codi"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Codi); err != nil {
			return row, err
		}

		// "Empleat"
		col++
		if item.EmpleatDestinatari != nil {
			if err := writeColumn(f, sheet, col, row, item.EmpleatDestinatari.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Sol·licitant"
		col++
		if item.Solicitant != nil {
			if err := writeColumn(f, sheet, col, row, item.Solicitant.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Tipus"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Tipus)); err != nil {
			return row, err
		}

		// "Estat"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Estat)); err != nil {
			return row, err
		}

		// "Data creació"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format(dateFormat)); err != nil {
			return row, err
		}

		// "Data resolució"
		col++
		if item.DataResolucio != nil {
			if err := writeColumn(f, sheet, col, row, item.DataResolucio.Format(dateFormat)); err != nil {
				return row, err
			}
		}

		// "Sistemes"
		col++
		if err := writeColumn(f, sheet, col, row, len(item.Sistemes)); err != nil {
			return row, err
		}
	}
	return row, nil
}

var checklistHeaders = []string{"Empleat", "Tipus", "Estat", "Tasques", "Completades", "Vençudes", "Data creació", "Data finalització"}

func (i impl) ExportChecklistList(list []dbmodels.ChecklistInstance) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error closing xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, checklistHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx header")
	}
	if len(list) != 0 {
		row, err = writeChecklistData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "error writing xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Checklists")
	return f.WriteToBuffer()
}

func writeChecklistData(f *excelize.File, sheet string, list []dbmodels.ChecklistInstance, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(checklistHeaders), len(list)+1); err != nil {
		return row, err
	}
	now := time.Now()
	for _, item := range list {
		row++
		completades := 0
		vencudes := 0
		for _, tasca := range item.Tasques {
			if tasca.Completada {
				completades++
			} else if tasca.DataLimit != nil && tasca.DataLimit.Before(now) {
				vencudes++
			}
		}

		// "Empleat"
		col := 1
		if item.Empleat != nil {
			if err := writeColumn(f, sheet, col, row, item.Empleat.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Tipus"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Tipus)); err != nil {
			return row, err
		}

		// "Estat"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Estat)); err != nil {
			return row, err
		}

		// "Tasques"
		col++
		if err := writeColumn(f, sheet, col, row, len(item.Tasques)); err != nil {
			return row, err
		}

		// "Completades"
		col++
		if err := writeColumn(f, sheet, col, row, completades); err != nil {
			return row, err
		}

		// "Vençudes"
		col++
		if err := writeColumn(f, sheet, col, row, vencudes); err != nil {
			return row, err
		}

		// "Data creació"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format(dateFormat)); err != nil {
			return row, err
		}

		// "Data finalització"
		col++
		if item.DataFinalitzacio != nil {
			if err := writeColumn(f, sheet, col, row, item.DataFinalitzacio.Format(dateFormat)); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
