package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sportivaid/arena-booking/internal/httperr"
)

// mapBookingErrors translates booking business codes to HTTP responses.
// Slot conflicts are the one 409 in the API.
func mapBookingErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "booking_failed", "Gagal memproses booking.")
		return
	}

	switch code {
	case "slot_conflict":
		httperr.Conflict(c, code, "Jadwal bentrok dengan booking lain.")
	case "field_not_found":
		httperr.NotFound(c, code, "Lapangan tidak ditemukan.")
	case "booking_not_found":
		httperr.NotFound(c, code, "Booking tidak ditemukan.")
	case "field_unavailable":
		httperr.BadRequest(c, code, "Lapangan sedang tidak tersedia.")
	case "empty_time_slots", "invalid_time_slot":
		httperr.BadRequest(c, code, "Pilihan jam tidak valid.")
	case "invalid_date", "date_in_past":
		httperr.BadRequest(c, code, "Tanggal tidak valid.")
	case "price_mismatch":
		httperr.BadRequest(c, code, "Total harga tidak sesuai.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Status booking tidak memungkinkan aksi ini.")
	case "not_paid":
		httperr.BadRequest(c, code, "Booking belum dibayar.")
	default:
		httperr.BadRequest(c, code, "Permintaan tidak valid.")
	}
}

func mapSaleErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "sale_failed", "Gagal menyimpan transaksi.")
		return
	}

	switch code {
	case "booking_not_found", "product_not_found":
		httperr.NotFound(c, code, "Data transaksi tidak ditemukan.")
	case "insufficient_stock":
		httperr.BadRequest(c, code, "Stok barang tidak mencukupi.")
	case "already_paid":
		httperr.BadRequest(c, code, "Booking sudah dibayar.")
	case "booking_cancelled":
		httperr.BadRequest(c, code, "Booking sudah dibatalkan.")
	case "invalid_amount", "empty_sale", "invalid_quantity":
		httperr.BadRequest(c, code, "Data transaksi tidak valid.")
	default:
		httperr.BadRequest(c, code, "Permintaan tidak valid.")
	}
}
