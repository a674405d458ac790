package reply

// Template pools keyed by subcategory. Selection draws one entry at
// random; callers asserting on output should check pool membership.
var productiveTemplates = map[string][]string{
	"trabalho": {
		"Obrigado pelo seu email. Vou analisar as informações e retornarei em breve com uma resposta detalhada.",
		"Perfeito! Este é um assunto importante que merece nossa atenção. Vou agendar uma reunião para discutirmos em detalhes.",
		"Excelente proposta! Gostaria de agendar uma conversa para explorarmos melhor essa oportunidade.",
		"Obrigado pelo contato profissional. Vou revisar o material e entrarei em contato nos próximos dias.",
		"Interessante! Este projeto parece muito promissor. Vou analisar a viabilidade e retornarei com feedback.",
	},
	"profissional": {
		"Obrigado pelo interesse em nossa empresa. Vou analisar seu perfil e entrarei em contato em breve.",
		"Perfeito! Sua experiência é muito relevante. Vou agendar uma entrevista para conhecermos melhor.",
		"Excelente currículo! Vou compartilhar com nossa equipe de RH e retornarei com informações sobre o processo seletivo.",
		"Obrigado pela candidatura. Vou analisar suas qualificações e entrarei em contato em breve.",
		"Interessante perfil! Vou agendar uma conversa para discutirmos as oportunidades disponíveis.",
	},
	"comercial": {
		"Obrigado pelo interesse em nossos produtos/serviços. Vou preparar uma proposta personalizada para você.",
		"Perfeito! Vou analisar suas necessidades e retornarei com uma solução adequada.",
		"Excelente oportunidade! Vou agendar uma demonstração para apresentarmos nossas soluções.",
		"Obrigado pelo contato comercial. Vou preparar um orçamento detalhado e entrarei em contato em breve.",
		"Interessante projeto! Vou analisar a viabilidade e retornarei com uma proposta comercial.",
	},
}

var unproductiveTemplates = map[string][]string{
	"spam": {
		"Obrigado pelo contato, mas não posso participar deste tipo de proposta.",
		"Agradeço o envio, mas não tenho interesse neste tipo de oportunidade.",
		"Obrigado, mas não posso atender a este tipo de solicitação.",
		"Agradeço o contato, mas não posso participar desta iniciativa.",
		"Obrigado, mas não tenho interesse neste tipo de proposta.",
	},
	"corrente": {
		"Obrigado pelo envio, mas não participo de correntes de email.",
		"Agradeço o contato, mas não encaminho correntes de email.",
		"Obrigado, mas não participo deste tipo de corrente.",
		"Agradeço o envio, mas não posso participar de correntes.",
		"Obrigado, mas não encaminho correntes de email.",
	},
	"marketing_agressivo": {
		"Obrigado pelo contato, mas não tenho interesse em promoções agressivas.",
		"Agradeço a oferta, mas não posso aceitar este tipo de proposta.",
		"Obrigado, mas não tenho interesse em ofertas limitadas.",
		"Agradeço o contato, mas não posso aceitar esta oferta.",
		"Obrigado, mas não tenho interesse em promoções imperdíveis.",
	},
	"phishing": {
		"Obrigado pelo contato, mas não forneço informações pessoais por email.",
		"Agradeço o aviso, mas não clico em links suspeitos.",
		"Obrigado, mas não verifico contas através de links em email.",
		"Agradeço o contato, mas não atualizo dados pessoais por email.",
		"Obrigado, mas não clico em links de verificação de conta.",
	},
}

var neutralTemplates = []string{
	"Obrigado pelo seu email. Vou analisar o conteúdo e retornarei em breve.",
	"Agradeço o contato. Vou revisar as informações e entrarei em contato em breve.",
	"Obrigado pela mensagem. Vou analisar o assunto e retornarei em breve.",
	"Agradeço o email. Vou revisar o conteúdo e entrarei em contato em breve.",
	"Obrigado pelo contato. Vou analisar as informações e retornarei em breve.",
}

// Short marker lists used only for subcategory identification. These
// are deliberately narrower than the scoring tables: identification
// looks at the raw lowercased text with exact inclusion, no stemming.
var (
	productiveOrder  = []string{"trabalho", "profissional", "comercial"}
	productiveMarkers = map[string][]string{
		"trabalho":     {"reunião", "projeto", "cliente", "negócio", "estratégia", "deadline"},
		"profissional": {"curriculum", "cv", "entrevista", "vaga", "emprego", "carreira"},
		"comercial":    {"venda", "compra", "produto", "serviço", "preço", "oferta"},
	}

	unproductiveOrder  = []string{"spam", "corrente", "marketing_agressivo", "phishing"}
	unproductiveMarkers = map[string][]string{
		"spam":                {"corrente", "sorte", "loteria", "herança", "prêmio", "ganhe"},
		"corrente":            {"fwd:", "reencaminhar", "encaminhar", "passe adiante", "envie para"},
		"marketing_agressivo": {"promoção imperdível", "oferta limitada", "última chance", "não perca"},
		"phishing":            {"verificar conta", "atualizar dados", "confirmar identidade", "segurança"},
	}
)

// Closers appended per confidence tier.
const (
	closerProductiveHigh   = " Estou confiante de que podemos trabalhar juntos neste projeto."
	closerProductiveLow    = " Gostaria de entender melhor suas necessidades."
	closerUnproductiveHigh = " Por favor, não envie mais este tipo de email."
	closerUnproductiveLow  = " Por favor, entre em contato apenas para assuntos profissionais."
)

// Fixed replies for the custom context path.
const (
	customUrgentProductive   = "URGENTE: Vou analisar este assunto com prioridade máxima e retornarei em até 2 horas."
	customUrgentUnproductive = "URGENTE: Este assunto não é relacionado ao trabalho. Por favor, entre em contato apenas para assuntos profissionais urgentes."
	customFormalProductive   = "Prezado(a), agradeço seu contato profissional. Vou analisar as informações e retornarei em breve com uma resposta detalhada. Atenciosamente."
	customFormalUnproductive = "Prezado(a), agradeço seu contato. No entanto, este assunto não é relacionado ao trabalho. Por favor, entre em contato apenas para assuntos profissionais. Atenciosamente."
)
