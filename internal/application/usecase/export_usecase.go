package usecase

import (
	"fmt"

	"github.com/jhoicas/spra-api/internal/domain"
	"github.com/jhoicas/spra-api/internal/domain/repository"
	"github.com/jhoicas/spra-api/pkg/export"
)

// Encabezado del CSV de plan: una fila plana por componente.
var planCSVHeader = []string{
	"code", "name", "total_required", "current_inventory", "net_requirement",
	"order_quantity", "order_date", "expected_delivery", "supplier",
	"lead_time_days", "estimated_cost", "status",
}

const dateLayout = "2006-01-02"

// ExportUseCase serializa el plan MRP de un pedido a CSV o PDF.
type ExportUseCase struct {
	orderRepo    repository.OrderRepository
	planRepo     repository.MRPPlanRepository
	pdfGenerator PlanPDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	orderRepo repository.OrderRepository,
	planRepo repository.MRPPlanRepository,
	pdfGenerator PlanPDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{orderRepo: orderRepo, planRepo: planRepo, pdfGenerator: pdfGenerator}
}

// PlanCSV exporta el plan como CSV. Con excel=true el contenido se
// transcodifica a windows-1252 para abrirse bien en Excel.
// Devuelve el contenido y el nombre de archivo sugerido.
func (uc *ExportUseCase) PlanCSV(orderID string, excel bool) ([]byte, string, error) {
	order, rows, err := uc.loadPlan(orderID)
	if err != nil {
		return nil, "", err
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, planCSVHeader)
	for _, row := range rows {
		orderDate := ""
		if row.OrderDate != nil {
			orderDate = row.OrderDate.Format(dateLayout)
		}
		delivery := ""
		if row.ExpectedDelivery != nil {
			delivery = row.ExpectedDelivery.Format(dateLayout)
		}
		records = append(records, []string{
			row.ComponentCode,
			row.ComponentName,
			row.TotalRequired.String(),
			row.CurrentInventory.String(),
			row.NetRequirement.String(),
			row.OrderQuantity.String(),
			orderDate,
			delivery,
			row.SupplierName,
			fmt.Sprintf("%d", row.LeadTimeDays),
			row.EstimatedCost.String(),
			row.Status,
		})
	}

	var content []byte
	if excel {
		content, err = export.CSVWindows1252(records)
	} else {
		content, err = export.CSV(records)
	}
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("plan_mrp_%s.csv", order.OrderNumber)
	return content, filename, nil
}

// PlanPDF exporta el plan como hoja PDF para imprimir en planta.
func (uc *ExportUseCase) PlanPDF(orderID string) ([]byte, string, error) {
	order, rows, err := uc.loadPlan(orderID)
	if err != nil {
		return nil, "", err
	}
	content, err := uc.pdfGenerator.GeneratePlanSheet(order.OrderNumber, order.CustomerName, rows)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("plan_mrp_%s.pdf", order.OrderNumber)
	return content, filename, nil
}

func (uc *ExportUseCase) loadPlan(orderID string) (order *orderInfo, rows []*repository.PlanRow, err error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, nil, err
	}
	if o == nil {
		return nil, nil, domain.ErrNotFound
	}
	rows, err = uc.planRepo.ListByOrder(orderID)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		// Sin plan generado no hay nada que exportar.
		return nil, nil, domain.ErrNotFound
	}
	return &orderInfo{OrderNumber: o.OrderNumber, CustomerName: o.CustomerName}, rows, nil
}

type orderInfo struct {
	OrderNumber  string
	CustomerName string
}
