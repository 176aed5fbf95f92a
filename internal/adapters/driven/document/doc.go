// Package document renders the placeholder content written for a payslip.
//
// Renderers:
//   - PDFRenderer: single-page PDF via gofpdf
//   - TextRenderer: plain-text summary
//   - Renderer: picks one of the above from the payslip's file type
package document
