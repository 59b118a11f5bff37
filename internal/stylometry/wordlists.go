package stylometry

func set(words ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}

// Closed-class words: articles, pronouns, prepositions, conjunctions,
// auxiliaries and modals.
var functionWords = set(
	"a", "an", "the",
	"i", "me", "my", "mine", "we", "us", "our", "ours", "you", "your", "yours",
	"he", "him", "his", "she", "her", "hers", "it", "its", "they", "them", "their", "theirs",
	"this", "that", "these", "those", "who", "whom", "whose", "which", "what",
	"about", "above", "across", "after", "against", "along", "among", "around", "at",
	"before", "behind", "below", "beneath", "beside", "between", "beyond", "by",
	"down", "during", "except", "for", "from", "in", "inside", "into", "near", "of",
	"off", "on", "onto", "out", "outside", "over", "past", "since", "through",
	"throughout", "to", "toward", "towards", "under", "until", "up", "upon", "with",
	"within", "without",
	"and", "but", "or", "nor", "so", "yet", "if", "because", "although", "though",
	"while", "whereas", "unless", "as", "than", "whether",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did",
	"can", "could", "may", "might", "must", "shall", "should", "will", "would",
)

// Stop words extend the function words with high-frequency adverbs,
// determiners and fillers.
var stopWords = func() map[string]struct{} {
	out := set(
		"all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
		"no", "not", "only", "own", "same", "too", "very", "just", "also", "then",
		"there", "here", "when", "where", "why", "how", "again", "further", "once",
		"now", "ever", "even", "still", "really", "quite", "much", "many",
	)
	for w := range functionWords {
		out[w] = struct{}{}
	}
	return out
}()

// Words that open a subordinate clause.
var subordinators = set(
	"although", "though", "because", "since", "unless", "whereas", "while",
	"whenever", "wherever", "whether", "if", "until", "after", "before",
	"once", "which", "who", "whom", "whose", "that", "when", "where",
)

// High-frequency verbs that carry no telltale suffix.
var commonVerbs = set(
	"is", "are", "was", "were", "be", "been", "am",
	"have", "has", "had", "do", "does", "did",
	"go", "goes", "went", "gone", "get", "gets", "got", "make", "makes", "made",
	"know", "knew", "known", "think", "thought", "take", "took", "taken",
	"see", "saw", "seen", "come", "came", "want", "wants", "use", "uses",
	"find", "found", "give", "gave", "given", "tell", "told", "say", "says", "said",
	"feel", "felt", "seem", "seems", "leave", "left", "keep", "kept", "let",
	"begin", "began", "show", "shows", "hear", "heard", "run", "ran", "bring", "brought",
	"write", "wrote", "written", "sit", "sat", "stand", "stood", "become", "became",
)

var nounSuffixes = []string{"tion", "sion", "ment", "ness", "ity", "ism", "ance", "ence", "ship", "hood", "ist", "er", "or"}

var adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "al", "ic", "less", "ish", "ary", "ent", "ant"}

var verbSuffixes = []string{"ed", "ing", "ize", "ise", "ify", "ate", "en"}
