// internals/features/surat/surat_keterangan/service/pdf_service.go
package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// SuratPDFData: semua yang dibutuhkan untuk merender satu surat keterangan.
type SuratPDFData struct {
	Nama            string
	JenisKelamin    string
	TempatLahir     string
	TanggalLahir    time.Time
	Pekerjaan       string
	AlamatSesuaiKTP string
	Pendidikan      string

	Nomor            string
	AlasanPermohonan string
	Tanggal          time.Time // tanggal penetapan surat
	Pejabat          string

	FotoJPEG []byte // pasfoto 4x6, boleh nil kalau foto gagal diambil
}

type PDFRenderer interface {
	RenderSuratKeterangan(d SuratPDFData) ([]byte, error)
}

type suratPDFRenderer struct{}

func NewPDFRenderer() PDFRenderer {
	return &suratPDFRenderer{}
}

var namaBulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// formatTanggalIndonesia: "2 - Januari - 2026"
func formatTanggalIndonesia(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d - %s - %d", t.Day(), namaBulan[t.Month()-1], t.Year())
}

func (r *suratPDFRenderer) RenderSuratKeterangan(d SuratPDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 15, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	// ===== Kop surat =====
	pdf.SetFont("Times", "B", 13)
	pdf.CellFormat(contentW, 6, tr("MAHKAMAH AGUNG REPUBLIK INDONESIA"), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, tr("DIREKTORAT JENDERAL BADAN PERADILAN UMUM"), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, tr("PENGADILAN TINGGI BANDUNG"), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, tr("PENGADILAN NEGERI CIBINONG KELAS 1A"), "", 1, "C", false, 0, "")

	pdf.SetFont("Times", "", 10)
	pdf.CellFormat(contentW, 4.5, tr("Jl. Tegar Beriman No. 5, Cibinong, Kab. Bogor - Jawa Barat"), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4.5, tr("Telp. 021-87905153, 021-87905154 Fax. 021-87905808"), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4.5, tr("Website: pn-cibinong.go.id Email: info.pncibinong@gmail.com"), "", 1, "C", false, 0, "")

	// garis kop
	pdf.Ln(2)
	y := pdf.GetY()
	pdf.SetLineWidth(0.8)
	pdf.Line(20, y, pageW-20, y)
	pdf.SetLineWidth(0.2)
	pdf.Ln(4)

	// ===== Judul =====
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(contentW, 6, tr("SURAT KETERANGAN"), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, tr("TIDAK PERNAH SEBAGAI TERPIDANA"), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, tr("NOMOR: "+d.Nomor), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ===== Isi =====
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(contentW, 5.5, tr("Ketua Pengadilan Negeri Cibinong menerangkan bahwa:"), "", "L", false)
	pdf.Ln(1)

	r.dataRow(pdf, tr, "Nama", d.Nama)
	r.dataRow(pdf, tr, "Jenis Kelamin", d.JenisKelamin)
	ttl := fmt.Sprintf("%s, %s", d.TempatLahir, formatTanggalIndonesia(d.TanggalLahir))
	r.dataRow(pdf, tr, "Tempat Tgl. Lahir", ttl)
	r.dataRow(pdf, tr, "Pekerjaan", d.Pekerjaan)
	r.dataRow(pdf, tr, "Alamat", d.AlamatSesuaiKTP)
	r.dataRow(pdf, tr, "Pendidikan", d.Pendidikan)
	pdf.Ln(2)

	pdf.MultiCell(contentW, 5.5, tr("Berdasarkan hasil pemeriksaan Register Berkas Pidana, Pengadilan menerangkan bahwa yang bersangkutan:"), "", "L", false)
	pdf.Ln(1)

	r.letteredItem(pdf, tr, "a.", "Tidak sedang menjalani hukuman pidana penjara;")
	r.letteredItem(pdf, tr, "b.", "Tidak pernah dijatuhi hukuman pidana penjara berdasarkan Putusan Pengadilan Negeri yang mempunyai kekuatan hukum tetap karena melakukan tindak pidana yang diancam dengan pidana penjara 5 (lima) tahun atau lebih.")
	pdf.Ln(2)

	penutup := fmt.Sprintf("Bahwa, Surat Keterangan ini dibuat sebagai persyaratan %s Apabila dikemudian hari terdapat kekeliruan dalam Surat Keterangan ini, akan diadakan perbaikan sebagaimana mestinya.", strings.TrimSpace(d.AlasanPermohonan))
	pdf.MultiCell(contentW, 5.5, tr(penutup), "", "L", false)
	pdf.Ln(8)

	// ===== Foto + blok tanda tangan =====
	blockY := pdf.GetY()

	// pasfoto 4x6 (30x45 mm) di kiri blok tanda tangan
	fotoX := pageW - 20 - 95.0
	if len(d.FotoJPEG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "JPG", ReadDpi: false}
		pdf.RegisterImageOptionsReader("pasfoto", opts, bytes.NewReader(d.FotoJPEG))
		pdf.ImageOptions("pasfoto", fotoX, blockY, 30, 45, false, opts, 0, "")
	} else {
		pdf.Rect(fotoX, blockY, 30, 45, "D")
	}

	ttdX := fotoX + 35
	pdf.SetXY(ttdX, blockY)
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(60, 5.5, tr("Ditetapkan di Cibinong"), "", 2, "L", false, 0, "")
	pdf.CellFormat(60, 5.5, tr("Pada tanggal, "+formatTanggalIndonesia(d.Tanggal)), "", 2, "L", false, 0, "")
	pdf.CellFormat(60, 5.5, tr("An Ketua Pengadilan Negeri Cibinong"), "", 2, "L", false, 0, "")

	// QR tanda tangan elektronik
	qrY := pdf.GetY() + 1
	qrContent := fmt.Sprintf("SURAT KETERANGAN %s | %s | PN CIBINONG", d.Nomor, d.Nama)
	if qrPNG, err := qrcode.Encode(qrContent, qrcode.Medium, 256); err == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qrttd", opts, bytes.NewReader(qrPNG))
		pdf.ImageOptions("qrttd", ttdX, qrY, 20, 20, false, opts, 0, "")
	}
	pdf.SetXY(ttdX, qrY+21)
	pdf.SetFont("Arial", "", 7)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(60, 3.5, tr("Ditandatangani secara elektronik"), "", 2, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(60, 6, tr(d.Pejabat), "", 2, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render surat keterangan: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *suratPDFRenderer) dataRow(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetX(28)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(42, 5.5, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 5.5, tr(": "+value), "", "L", false)
}

func (r *suratPDFRenderer) letteredItem(pdf *gofpdf.Fpdf, tr func(string) string, letter, text string) {
	pdf.SetX(28)
	pdf.CellFormat(7, 5.5, tr(letter), "", 0, "L", false, 0, "")
	pdf.MultiCell(0, 5.5, tr(text), "", "L", false)
}
