// Package sri contiene utilidades de validación de identificadores
// tributarios del SRI (Ecuador): cédula de 10 dígitos y RUC de 13.
package sri

import (
	"fmt"
	"strconv"
	"unicode"
)

// ValidateIdentifier valida una cédula (10 dígitos) o un RUC (13 dígitos).
// Acepta el identificador con o sin guiones/espacios.
func ValidateIdentifier(id string) error {
	digits := extractDigits(id)
	switch len(digits) {
	case 10:
		return validateCedula(digits)
	case 13:
		return validateRUC(digits)
	default:
		return fmt.Errorf("sri: el identificador debe tener 10 o 13 dígitos, se encontraron %d", len(digits))
	}
}

// validateCedula aplica el algoritmo módulo 10 del Registro Civil: los nueve
// primeros dígitos se ponderan 2,1,2,1,... (restando 9 cuando el producto
// excede 9) y el décimo es el dígito verificador.
func validateCedula(digits []byte) error {
	province, _ := strconv.Atoi(string(digits[:2]))
	if province < 1 || (province > 24 && province != 30) { // 30 = ecuatorianos en el exterior
		return fmt.Errorf("sri: código de provincia inválido: %02d", province)
	}
	if digits[2]-'0' > 5 {
		return fmt.Errorf("sri: tercer dígito inválido para cédula: %c", digits[2])
	}

	var sum int
	for i := 0; i < 9; i++ {
		d := int(digits[i] - '0')
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	expected := (10 - sum%10) % 10
	if int(digits[9]-'0') != expected {
		return fmt.Errorf("sri: dígito verificador inválido: esperado %d, recibido %c", expected, digits[9])
	}
	return nil
}

// validateRUC valida un RUC de 13 dígitos. El RUC de persona natural es la
// cédula más el establecimiento "001"; los RUC de sociedades (tercer dígito 9)
// y públicos (tercer dígito 6) usan módulo 11 con sus propios pesos.
func validateRUC(digits []byte) error {
	establishment := string(digits[10:])
	if establishment == "000" {
		return fmt.Errorf("sri: código de establecimiento inválido: %s", establishment)
	}

	switch digits[2] {
	case '6':
		return mod11(digits, []int{3, 2, 7, 6, 5, 4, 3, 2}, 8)
	case '9':
		return mod11(digits, []int{4, 3, 2, 7, 6, 5, 4, 3, 2}, 9)
	default:
		return validateCedula(digits[:10])
	}
}

// mod11 verifica el dígito en la posición checkPos contra la suma ponderada
// módulo 11 de los dígitos previos.
func mod11(digits []byte, weights []int, checkPos int) error {
	var sum int
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	remainder := sum % 11
	expected := 0
	if remainder != 0 {
		expected = 11 - remainder
	}
	if expected == 10 {
		return fmt.Errorf("sri: identificador sin dígito verificador válido")
	}
	if int(digits[checkPos]-'0') != expected {
		return fmt.Errorf("sri: dígito verificador inválido: esperado %d, recibido %c", expected, digits[checkPos])
	}
	return nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
