// Package httperr define el contrato de error de la API:
// {"erro": CODE, "mensagem": texto, "detalhes"?: extra}.
// Los códigos y mensajes en portugués son parte del contrato que las
// suites de QA asierten, no cosmética.
package httperr

import (
	"encoding/json"
	"net/http"
)

const (
	CodeValidation  = "ERRO_VALIDACAO"
	CodeNotFound    = "RECURSO_NAO_ENCONTRADO"
	CodeInvalidID   = "ID_INVALIDO"
	CodeInvalidJSON = "JSON_INVALIDO"
	CodeInternal    = "ERRO_INTERNO"
)

// MsgInternal es el único texto que un 500 expone al cliente; el
// detalle real queda en el log local.
const MsgInternal = "Ocorreu um erro interno no servidor"

type Response struct {
	Erro     string `json:"erro"`
	Mensagem string `json:"mensagem"`
	Detalhes any    `json:"detalhes,omitempty"`
}

func Write(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
