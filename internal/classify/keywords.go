package classify

// Keyword tables per subcategory. Entries are surface forms; matching
// against normalized tokens is bidirectional substring, so a stemmed
// token still hits the full keyword and vice versa.
var productiveKeywords = map[string][]string{
	"trabalho": {
		"reunião", "projeto", "cliente", "negócio", "estratégia", "deadline",
		"relatório", "apresentação", "planejamento", "objetivo", "meta", "resultado",
		"análise", "desenvolvimento", "implementação", "cooperação", "colaboração",
		"parceria", "contrato", "proposta", "orçamento", "cronograma", "equipe",
	},
	"profissional": {
		"curriculum", "cv", "entrevista", "vaga", "emprego", "carreira",
		"formação", "experiência", "competência", "habilidade", "treinamento",
		"certificação", "especialização", "graduação", "pós-graduação",
	},
	"comercial": {
		"venda", "compra", "produto", "serviço", "preço", "desconto", "oferta",
		"promoção", "marketing", "publicidade", "campanha", "mercado", "concorrência",
	},
}

var unproductiveKeywords = map[string][]string{
	"spam": {
		"corrente", "sorte", "loteria", "herança", "prêmio", "ganhe", "grátis", "urgente",
		"limitado", "exclusivo", "confidencial", "secreto", "oportunidade única",
	},
	"corrente": {
		"fwd:", "reencaminhar", "encaminhar", "passe adiante", "envie para",
		"reze por", "bênção", "maldição", "7 dias", "24 horas",
	},
	"marketing_agressivo": {
		"promoção imperdível", "oferta limitada", "última chance",
		"não perca", "garantido", "100% seguro", "sem risco",
	},
	"phishing": {
		"verificar conta", "atualizar dados", "confirmar identidade", "segurança",
		"suspensão", "bloqueio", "acesso restrito", "clique aqui",
	},
}

// Per-subcategory weights. Productive weights are positive,
// unproductive negative; every keyword hit adds its subcategory
// weight to that subcategory's score.
var keywordWeights = map[string]float64{
	"trabalho":            2.0,
	"profissional":        1.5,
	"comercial":           1.0,
	"spam":                -2.0,
	"corrente":            -1.5,
	"marketing_agressivo": -1.0,
	"phishing":            -2.5,
}

func init() {
	for sub := range productiveKeywords {
		if keywordWeights[sub] <= 0 {
			panic("productive subcategory without positive weight: " + sub)
		}
	}
	for sub := range unproductiveKeywords {
		if keywordWeights[sub] >= 0 {
			panic("unproductive subcategory without negative weight: " + sub)
		}
	}
}
