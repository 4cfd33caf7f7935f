package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
)

// CheckoutService builds the order summary and the wa.me deep link for a
// checkout. Pricing always comes from the stored product; the store's reply
// number comes from the store profile, falling back to the configured number.
type CheckoutService struct {
	products      ports.ProductRepository
	orders        ports.OrderRepository
	profile       ports.StoreProfileRepository
	fallbackPhone string
	log           zerolog.Logger
}

func NewCheckoutService(
	products ports.ProductRepository,
	orders ports.OrderRepository,
	profile ports.StoreProfileRepository,
	fallbackPhone string,
	log zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{
		products:      products,
		orders:        orders,
		profile:       profile,
		fallbackPhone: fallbackPhone,
		log:           log,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, in ports.CheckoutInput) (*ports.CheckoutResult, error) {
	if in.Quantity < 1 {
		in.Quantity = 1
	}

	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive || !product.InStock(in.Quantity) {
		return nil, domain.ErrOutOfStock
	}

	total := product.Price * int64(in.Quantity)
	orderNumber := generateOrderNumber()
	customer := domain.Customer{Name: in.CustomerName, Phone: in.CustomerPhone}

	storePhone := s.storePhone(ctx)
	message := composeOrderMessage(orderNumber, product, in.Quantity, total, customer, in.Notes)
	waURL := "https://wa.me/" + storePhone + "?" + url.Values{"text": {message}}.Encode()

	order := &domain.Order{
		OrderNumber:  orderNumber,
		ProductID:    product.ID,
		ProductName:  product.Name,
		UnitPrice:    product.Price,
		Quantity:     in.Quantity,
		Total:        total,
		Customer:     customer,
		Notes:        in.Notes,
		WhatsAppURL:  waURL,
		CreatedByUID: in.RequestedBy,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.orders.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Str("order_number", orderNumber).Msg("failed to record order")
		return nil, err
	}

	s.log.Info().
		Str("order_number", orderNumber).
		Str("product_id", product.ID).
		Int("quantity", in.Quantity).
		Int64("total", total).
		Msg("checkout link generated")

	return &ports.CheckoutResult{
		OrderNumber: orderNumber,
		WhatsAppURL: waURL,
		Product:     product,
		Quantity:    in.Quantity,
		Total:       total,
		Customer:    customer,
	}, nil
}

// storePhone resolves the WhatsApp destination. A missing profile is not an
// error for checkout; the configured fallback keeps the flow working.
func (s *CheckoutService) storePhone(ctx context.Context) string {
	if profile, err := s.profile.Get(ctx); err == nil && profile.Phone != "" {
		return NormalizePhone(profile.Phone)
	}
	return NormalizePhone(s.fallbackPhone)
}

// generateOrderNumber returns an order number in the format SF-XXXXXXXX.
func generateOrderNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("SF-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("SF-%08X", b)
}

func composeOrderMessage(orderNumber string, p *domain.Product, quantity int, total int64, c domain.Customer, notes string) string {
	var b strings.Builder
	b.WriteString("Halo, saya ingin memesan:\n\n")
	fmt.Fprintf(&b, "No. Pesanan: %s\n", orderNumber)
	fmt.Fprintf(&b, "Produk: %s\n", p.Name)
	fmt.Fprintf(&b, "Jumlah: %d\n", quantity)
	fmt.Fprintf(&b, "Harga: %s\n", FormatRupiah(p.Price))
	fmt.Fprintf(&b, "Total: %s\n\n", FormatRupiah(total))
	fmt.Fprintf(&b, "Nama: %s\n", c.Name)
	fmt.Fprintf(&b, "No. HP: %s\n", c.Phone)
	if notes != "" {
		fmt.Fprintf(&b, "Catatan: %s\n", notes)
	}
	return b.String()
}

// NormalizePhone reduces a phone number to the digits wa.me expects: no
// punctuation, and the local 0 prefix replaced with the 62 country code.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if strings.HasPrefix(d, "0") {
		d = "62" + d[1:]
	}
	return d
}

// FormatRupiah renders a whole-rupiah amount as "Rp 1.234.567".
func FormatRupiah(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return "Rp " + s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return "Rp " + b.String()
}
