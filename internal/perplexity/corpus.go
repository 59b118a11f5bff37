package perplexity

// CorpusVersion identifies the reference corpus below. Bump it whenever a
// sentence is added, removed or edited: trained probabilities, and therefore
// every predictability score, change with the corpus.
const CorpusVersion = "2024.06-r1"

// ReferenceCorpus mixes academic, conversational, narrative, technical and
// mixed-complexity sentences.
var ReferenceCorpus = []string{
	// academic
	"The results of the study indicate a significant relationship between the two variables.",
	"Previous research has shown that this effect is consistent across different populations.",
	"The data were collected over a period of three years and analyzed using standard methods.",
	"These findings suggest that further research is needed to understand the underlying mechanisms.",
	"In this paper we examine the role of social factors in the development of language skills.",
	"The analysis reveals important differences between the experimental and control groups.",
	"It is important to note that the sample size was relatively small.",
	"The theoretical framework provides a useful lens for understanding these complex processes.",
	"Our approach builds on earlier work and extends it to a wider range of cases.",
	"The evidence supports the hypothesis that early exposure improves long term outcomes.",

	// conversational
	"I was going to call you yesterday but my phone died.",
	"Do you want to grab some coffee later this afternoon?",
	"Honestly I have no idea what he was talking about.",
	"That movie was so much better than I expected it to be.",
	"We should probably leave now if we want to catch the train.",
	"She said she would be here by six but you know how she is.",
	"Can you believe it is already the end of the month?",
	"I think I left my keys in the car again.",
	"Yeah that sounds good to me, let me know when you are ready.",
	"My brother keeps telling me to try that new place downtown.",

	// narrative
	"The old man walked slowly down the road as the sun began to set.",
	"She opened the door and stepped into the dark and silent room.",
	"Rain fell all night and by morning the river had flooded the fields.",
	"He remembered the summer they spent at the lake when they were children.",
	"The letter arrived on a cold morning in the middle of winter.",
	"Nobody in the village knew where the stranger had come from.",
	"The dog barked twice and then ran off into the trees.",
	"They sat by the fire and talked until the candles burned out.",
	"When she finally reached the top of the hill the town was gone.",
	"The ship drifted for days before anyone saw land.",

	// technical
	"The function returns an error if the input file cannot be opened.",
	"Configure the server to listen on port eight thousand and restart the service.",
	"Each request is processed by a worker from the pool and the result is cached.",
	"The database stores each record with a unique identifier and a timestamp.",
	"Install the package and add the path to your environment variables.",
	"The algorithm runs in linear time with respect to the size of the input.",
	"If the connection times out the client retries the request three times.",
	"The system uses a queue to buffer incoming messages before they are written to disk.",
	"Update the configuration file and run the tests again to verify the change.",
	"Memory usage grows with the number of open connections.",

	// mixed complexity
	"Although the weather was bad, we decided to go for a walk anyway.",
	"The committee, which met on Tuesday, could not reach a decision.",
	"Some people prefer to work in the morning while others do their best work at night.",
	"It was not the first time he had made that mistake, and it would not be the last.",
	"Because the project ran over budget, several features were cut from the final release.",
	"The city has changed a lot over the years, but the old market is still there.",
	"If you want to learn a new language, you have to practice every day.",
	"The instructor asked the students to read the chapter and write a short summary.",
	"After the meeting ended, everyone went back to their desks without saying a word.",
	"What matters most is not how fast you go but whether you keep going.",
}
