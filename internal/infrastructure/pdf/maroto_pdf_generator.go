// Package pdf implementa el resumen imprimible de una admisión hospitalaria.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Resumen de Admisión  │  N° Admisión + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PACIENTE: Nombre / Registro / Sangre / Alergias            │
//	│  UBICACIÓN: Pabellón + tipo + cama                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLÍNICA: Motivo / Diagnóstico / Plan / Urgencia            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTADO: aprobación y alta si existen                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Hospitalario-api/internal/application/admission"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 84}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ admission.SummaryPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa admission.SummaryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	hospitalName string
}

// NewMarotoPDFGenerator construye el generador con el nombre del hospital para el membrete.
func NewMarotoPDFGenerator(hospitalName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{hospitalName: hospitalName}
}

// GenerateAdmissionSummary genera el PDF del resumen y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateAdmissionSummary(
	_ context.Context,
	adm *entity.Admission,
	patient *entity.Patient,
	ward *entity.Ward,
	bedNumber string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Admisión", true).
		WithAuthor(g.hospitalName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.hospitalName, adm))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(patientRow(patient))
	m.AddRows(locationRow(ward, bedNumber))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range clinicalRows(adm) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(statusRow(adm))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: membrete del hospital (izq) y N° de admisión + fecha (der).
func headerRow(hospitalName string, adm *entity.Admission) core.Row {
	fecha := adm.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(hospitalName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumen de Admisión Hospitalaria", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ADMISIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(adm.AdmissionNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Solicitada: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// patientRow: identificación del paciente.
func patientRow(patient *entity.Patient) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("PACIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(patient.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Registro: %s   |   Sangre: %s   |   Alergias: %s",
				patient.RegistrationNumber,
				nonEmpty(patient.BloodType, "—"),
				nonEmpty(patient.Allergies, "ninguna reportada"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// locationRow: pabellón y cama asignados (o pendiente de asignación).
func locationRow(ward *entity.Ward, bedNumber string) core.Row {
	cama := bedNumber
	if cama == "" {
		cama = "pendiente de asignación"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("UBICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Pabellón: %s (%s)   |   Cama: %s",
				ward.Name, wardTypeLabel(ward.WardType), cama,
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// clinicalRows: motivo, diagnóstico, plan de tratamiento y urgencia.
func clinicalRows(adm *entity.Admission) []core.Row {
	section := func(label, value string) core.Row {
		return row.New(14).Add(col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(value, "—"), props.Text{Size: 9, Top: 6}),
		))
	}
	return []core.Row{
		section("MOTIVO DE ADMISIÓN", adm.AdmissionReason),
		section("DIAGNÓSTICO", adm.Diagnosis),
		section("PLAN DE TRATAMIENTO", adm.TreatmentPlan),
		section("URGENCIA", strings.ToUpper(adm.Urgency)),
	}
}

// statusRow: estado actual con fechas de aprobación/alta cuando existen.
func statusRow(adm *entity.Admission) core.Row {
	estado := statusLabel(adm.Status)
	if adm.Status == entity.AdmissionStatusDischarged && adm.DischargedAt != nil {
		estado += " el " + adm.DischargedAt.Format("02/01/2006 15:04")
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New("ESTADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(estado, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func wardTypeLabel(t string) string {
	switch t {
	case entity.WardTypeGeneral:
		return "General"
	case entity.WardTypeICU:
		return "UCI"
	case entity.WardTypePediatric:
		return "Pediatría"
	case entity.WardTypeMaternity:
		return "Maternidad"
	case entity.WardTypeIsolation:
		return "Aislamiento"
	default:
		return t
	}
}

func statusLabel(s string) string {
	switch s {
	case entity.AdmissionStatusActive:
		return "Solicitud pendiente de aprobación"
	case entity.AdmissionStatusApproved:
		return "Admisión aprobada"
	case entity.AdmissionStatusDischarged:
		return "Paciente dado de alta"
	default:
		return s
	}
}
