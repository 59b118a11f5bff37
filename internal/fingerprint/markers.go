package fingerprint

// Single and hyphenated words that turn up far more often in formulaic,
// generated prose than in ordinary writing.
var markerWords = []string{
	"delve", "delves", "delving", "tapestry", "meticulous", "meticulously",
	"intricate", "intricacies", "furthermore", "moreover", "additionally",
	"consequently", "nevertheless", "notably", "crucial", "pivotal", "paramount",
	"comprehensive", "robust", "seamless", "seamlessly", "leverage", "leveraging",
	"utilize", "utilizing", "facilitate", "foster", "fostering", "harness",
	"navigate", "navigating", "realm", "landscape", "testament", "multifaceted",
	"nuanced", "holistic", "synergy", "paradigm", "underscore", "underscores",
	"showcasing", "embark", "endeavor", "vibrant", "bustling", "unwavering",
	"invaluable", "commendable", "transformative", "profound", "elevate",
	"streamline", "cutting-edge", "game-changer", "ever-evolving",
}

// Multi-word stock phrases.
var markerPhrases = []string{
	"it is important to note",
	"it's important to note",
	"it is worth noting",
	"in conclusion",
	"in summary",
	"to summarize",
	"in today's fast-paced world",
	"in today's digital age",
	"plays a crucial role",
	"plays a pivotal role",
	"a testament to",
	"delve into",
	"dive into",
	"navigate the complexities",
	"a wide range of",
	"a rich tapestry",
	"at the end of the day",
	"when it comes to",
	"it goes without saying",
	"in the realm of",
	"first and foremost",
	"last but not least",
	"shed light on",
	"pave the way",
	"unlock the potential",
	"stands as a",
	"serves as a",
	"in essence",
	"i hope this helps",
	"as an ai language model",
}

// Structural patterns, matched case-insensitively.
var markerPatterns = []string{
	`\b(?:moreover|furthermore|additionally|consequently|however),\s`,
	`\bit is (?:\w+ ){1,4}that\b`,
	`\bnot only\b[^.!?]{1,80}\bbut also\b`,
	`\bnot just\b[^.!?]{1,60}\bbut\b`,
	`\b(?:firstly|secondly|thirdly|lastly),`,
	`\b(?:in|with) (?:today's|this) (?:ever-evolving|fast-paced|digital|modern) (?:world|landscape|age|era)\b`,
	`\bby (?:leveraging|harnessing|utilizing)\b`,
	`\b(?:plays?|playing) an? (?:crucial|vital|pivotal|key|significant) role\b`,
	`(?m)^\s*(?:in conclusion|to sum up|overall),`,
	`\bwhether you're\b[^.!?]{1,60}\bor\b`,
}
