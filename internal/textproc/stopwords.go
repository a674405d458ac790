package textproc

// Combined Portuguese + English stop-word set. Tokens found here are
// dropped before stemming, so entries are surface forms, not stems.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range portugueseStopwords {
		stopwords[w] = struct{}{}
	}
	for _, w := range englishStopwords {
		stopwords[w] = struct{}{}
	}
}

var portugueseStopwords = []string{
	"a", "à", "ao", "aos", "aquela", "aquelas", "aquele", "aqueles",
	"aquilo", "as", "às", "até", "com", "como", "da", "das", "de",
	"dela", "delas", "dele", "deles", "depois", "do", "dos", "e", "é",
	"ela", "elas", "ele", "eles", "em", "entre", "era", "eram", "essa",
	"essas", "esse", "esses", "esta", "está", "estamos", "estão",
	"estas", "estava", "estavam", "este", "esteja", "estejam", "estes",
	"estou", "eu", "foi", "fomos", "for", "foram", "fosse", "fossem",
	"fui", "há", "isso", "isto", "já", "lhe", "lhes", "mais", "mas",
	"me", "mesmo", "meu", "meus", "minha", "minhas", "muito", "na",
	"não", "nas", "nem", "no", "nos", "nós", "nossa", "nossas", "nosso",
	"nossos", "num", "numa", "o", "os", "ou", "para", "pela", "pelas",
	"pelo", "pelos", "por", "qual", "quando", "que", "quem", "são",
	"se", "seja", "sejam", "sem", "ser", "será", "serão", "seu", "seus",
	"só", "somos", "sou", "sua", "suas", "também", "te", "tem", "têm",
	"temos", "tenho", "ter", "teu", "tua", "tu", "um", "uma", "vamos",
	"você", "vocês", "vos",
}

var englishStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am",
	"an", "and", "any", "are", "aren't", "as", "at", "be", "because",
	"been", "before", "being", "below", "between", "both", "but", "by",
	"can", "cannot", "could", "did", "do", "does", "doing", "don't",
	"down", "during", "each", "few", "for", "from", "further", "had",
	"has", "have", "having", "he", "her", "here", "hers", "herself",
	"him", "himself", "his", "how", "i", "if", "in", "into", "is",
	"it", "its", "itself", "just", "me", "more", "most", "my", "myself",
	"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or",
	"other", "our", "ours", "ourselves", "out", "over", "own", "same",
	"she", "should", "so", "some", "such", "than", "that", "the",
	"their", "theirs", "them", "themselves", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until",
	"up", "very", "was", "we", "were", "what", "when", "where", "which",
	"while", "who", "whom", "why", "will", "with", "would", "you",
	"your", "yours", "yourself", "yourselves",
}
