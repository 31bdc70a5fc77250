package document

import (
	"bytes"
	"fmt"

	"atelier_noiva/internal/domain/entities"

	"github.com/go-pdf/fpdf"
)

// QuotePDFRenderer renders a finalized quote as a printable A4 document:
// header with the bride/event info, the itemized lines with per-line totals,
// the grand total and the payment terms.

type QuotePDFRenderer struct{}

func NewQuotePDFRenderer() *QuotePDFRenderer {
	return &QuotePDFRenderer{}
}

func (r *QuotePDFRenderer) Render(q entities.Quote) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetTextColor(102, 51, 153)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(105-pdf.GetStringWidth(tr("Orçamento - "+q.BrideName))/2, 20, tr("Orçamento - "+q.BrideName))

	pdf.SetFont("Helvetica", "", 14)
	y := 40.0
	pdf.Text(20, y, tr("Noiva: "+q.BrideName))
	y += 10
	pdf.Text(20, y, tr("Data do Evento: "+FormatDate(q.EventDate)))
	y += 10
	pdf.Text(20, y, tr("Telefone: "+FormatPhone(q.Phone)))
	y += 10
	pdf.Text(20, y, tr("CPF: "+q.CPF))
	if q.Notes != "" {
		y += 10
		pdf.Text(20, y, tr("Observações: "+q.Notes))
	}
	y += 10

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, y, 190, y)
	y += 10

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, y, tr("Serviços Contratados:"))
	y += 10

	pdf.SetFont("Helvetica", "", 12)
	for i, l := range q.Lines {
		if y > 270 {
			pdf.AddPage()
			y = 20
		}
		label := fmt.Sprintf("%d. %s (%dx)", i+1, l.Name, l.Quantity)
		value := FormatBRL(l.TotalCents())
		pdf.Text(25, y, tr(label))
		pdf.Text(160-pdf.GetStringWidth(tr(value)), y, tr(value))
		y += 10
	}

	pdf.SetFont("Helvetica", "B", 14)
	if q.DiscountCents > 0 {
		y += 5
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(25, y, tr(fmt.Sprintf("Subtotal: %s", FormatBRL(q.SubtotalCents))))
		y += 8
		pdf.Text(25, y, tr(fmt.Sprintf("Desconto (%.0f%%): -%s", q.Payment.DiscountPercent, FormatBRL(q.DiscountCents))))
		y += 8
		pdf.SetFont("Helvetica", "B", 14)
	} else {
		y += 10
	}
	pdf.Text(120, y, tr("Total: "+FormatBRL(q.TotalCents)))
	y += 10

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, y, tr("Pagamento: "+paymentLabel(q)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func paymentLabel(q entities.Quote) string {
	switch q.Payment.Method {
	case entities.PaymentMethodPix:
		return "Pix"
	case entities.PaymentMethodDinheiro:
		return "Dinheiro à vista"
	case entities.PaymentMethodBoleto:
		return "Boleto"
	case entities.PaymentMethodCartao:
		if q.Payment.Installments > 1 {
			return fmt.Sprintf("Cartão - %dx de %s", q.Payment.Installments, FormatBRL(q.InstallmentCents))
		}
		return "Cartão"
	default:
		return string(q.Payment.Method)
	}
}
