package seed

import (
	"fmt"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// invoiceNamespace derives stable invoice ids so reseeding hits the primary key.
var invoiceNamespace = uuid.MustParse("7f0e3c4a-5d55-4f3e-9a44-1c2b8d6e0a11")

var (
	customerAdaLovell    = uuid.MustParse("4c0a1d3e-2b7f-4e61-9d0a-8f3b5c2e7a10")
	customerBrunoTakeda  = uuid.MustParse("a8d2f6b1-93c4-4f0e-b57a-2e6c1d9f4b32")
	customerCarmenSilva  = uuid.MustParse("1e5b7c9d-0f2a-4b36-8c41-7d9e3a5f6c54")
	customerDevPatel     = uuid.MustParse("b3f9e2a7-6c1d-4a58-9e02-5f8d7c3b1a76")
	customerEllaNorth    = uuid.MustParse("6d2c8a4f-1b9e-4c70-a613-9e4f2b8d5c98")
	customerFinnOkafor   = uuid.MustParse("e7a1c5b3-4d8f-4e92-b035-3c7a9f1e2d10")
	customerGretaHolm    = uuid.MustParse("2f8e4b6d-9a3c-4d14-8f57-1b6e5c9a7d32")
	customerHectorValdez = uuid.MustParse("9c4a6e8f-3d1b-4f36-a279-6d2f8b4e1c54")
)

func Customers() []models.Customer {
	return []models.Customer{
		{ID: customerAdaLovell, Name: "Ada Lovell", Email: "ada@lovell.dev", ImageURL: "/customers/ada-lovell.png"},
		{ID: customerBrunoTakeda, Name: "Bruno Takeda", Email: "bruno@takeda.io", ImageURL: "/customers/bruno-takeda.png"},
		{ID: customerCarmenSilva, Name: "Carmen Silva", Email: "carmen@silva.com", ImageURL: "/customers/carmen-silva.png"},
		{ID: customerDevPatel, Name: "Dev Patel", Email: "dev@patel.net", ImageURL: "/customers/dev-patel.png"},
		{ID: customerEllaNorth, Name: "Ella North", Email: "ella@north.co", ImageURL: "/customers/ella-north.png"},
		{ID: customerFinnOkafor, Name: "Finn Okafor", Email: "finn@okafor.org", ImageURL: "/customers/finn-okafor.png"},
		{ID: customerGretaHolm, Name: "Greta Holm", Email: "greta@holm.se", ImageURL: "/customers/greta-holm.png"},
		{ID: customerHectorValdez, Name: "Hector Valdez", Email: "hector@valdez.mx", ImageURL: "/customers/hector-valdez.png"},
	}
}

type invoiceSeed struct {
	customer uuid.UUID
	amount   int64
	status   string
	date     string
}

var invoiceSeeds = []invoiceSeed{
	{customerAdaLovell, 15795, models.InvoiceStatusPending, "2022-12-06"},
	{customerBrunoTakeda, 20348, models.InvoiceStatusPending, "2022-11-14"},
	{customerEllaNorth, 3040, models.InvoiceStatusPaid, "2022-10-29"},
	{customerDevPatel, 44800, models.InvoiceStatusPaid, "2023-09-10"},
	{customerFinnOkafor, 34577, models.InvoiceStatusPending, "2023-08-05"},
	{customerCarmenSilva, 54246, models.InvoiceStatusPending, "2023-07-16"},
	{customerAdaLovell, 666, models.InvoiceStatusPending, "2023-06-27"},
	{customerDevPatel, 32545, models.InvoiceStatusPaid, "2023-06-09"},
	{customerEllaNorth, 1250, models.InvoiceStatusPaid, "2023-06-17"},
	{customerFinnOkafor, 8546, models.InvoiceStatusPaid, "2023-06-07"},
	{customerBrunoTakeda, 500, models.InvoiceStatusPaid, "2023-08-19"},
	{customerFinnOkafor, 8945, models.InvoiceStatusPaid, "2023-06-03"},
	{customerGretaHolm, 1000, models.InvoiceStatusPaid, "2022-06-05"},
	{customerGretaHolm, 123456, models.InvoiceStatusPending, "2023-10-02"},
}

// Invoices returns the placeholder invoices. Customer Hector Valdez has none.
func Invoices() []models.Invoice {
	invoices := make([]models.Invoice, 0, len(invoiceSeeds))
	for _, s := range invoiceSeeds {
		date, err := time.Parse("2006-01-02", s.date)
		if err != nil {
			panic(fmt.Sprintf("seed: bad invoice date %q", s.date))
		}
		key := fmt.Sprintf("%s|%d|%s", s.customer, s.amount, s.date)
		invoices = append(invoices, models.Invoice{
			ID:         uuid.NewSHA1(invoiceNamespace, []byte(key)),
			CustomerID: s.customer,
			Amount:     s.amount,
			Date:       datatypes.Date(date),
			Status:     s.status,
		})
	}
	return invoices
}

func Revenue() []models.Revenue {
	return []models.Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
		{Month: "Mar", Revenue: 2200},
		{Month: "Apr", Revenue: 2500},
		{Month: "May", Revenue: 2300},
		{Month: "Jun", Revenue: 3200},
		{Month: "Jul", Revenue: 3500},
		{Month: "Aug", Revenue: 3700},
		{Month: "Sep", Revenue: 2500},
		{Month: "Oct", Revenue: 2800},
		{Month: "Nov", Revenue: 3000},
		{Month: "Dec", Revenue: 4800},
	}
}
