package enrichment

import "fmt"

func draftPrompt(rawNotes, procedureType string) string {
	return fmt.Sprintf(`Você é um assistente de uma esteticista profissional.
Transforme as anotações abaixo em um registro técnico formal e conciso (no máximo 3 frases) para o prontuário da cliente.

Procedimento: %s
Detalhes/Observações brutas: %s

Responda apenas com o texto do registro.`, procedureType, rawNotes)
}

func aftercarePrompt(procedureType string) string {
	return fmt.Sprintf(
		"Liste 3 cuidados pós-procedimento essenciais para: %s. Formato: Lista simples com hífens. Tom amigável e instrutivo para o cliente.",
		procedureType,
	)
}
