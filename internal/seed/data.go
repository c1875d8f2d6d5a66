package seed

type questionSeed struct {
	Text    string
	Options []string
	Answer  string
}

type paragraphSeed struct {
	Text      string
	Questions []questionSeed
}

type categorySeed struct {
	Name       string
	Paragraphs []paragraphSeed
}

var categories = []categorySeed{
	{
		Name: "History",
		Paragraphs: []paragraphSeed{
			{
				Text: "History is the study of past events, and understanding it helps us comprehend the present. " +
					"The first president of the United States, George Washington, led the country after it gained independence. " +
					"Throughout history, pivotal events such as the end of World War II in 1945, the reign of Genghis Khan, " +
					"and the construction of the Egyptian pyramids have shaped the world as we know it. " +
					"The causes and consequences of wars, like the American Civil War and World War I, continue to influence modern society. " +
					"The evolution of civilizations, from the ancient Egyptians to the Mongol Empire, offers valuable lessons for the future.",
				Questions: []questionSeed{
					{
						Text:    "Who was the first president of the United States?",
						Options: []string{"George Washington", "Abraham Lincoln", "Thomas Jefferson", "Theodore Roosevelt"},
						Answer:  "A",
					},
					{
						Text:    "In which year did World War II end?",
						Options: []string{"1945", "1950", "1939", "1960"},
						Answer:  "A",
					},
					{
						Text:    "Which ancient civilization built the pyramids?",
						Options: []string{"Ancient Rome", "Ancient Egypt", "Ancient Greece", "Ancient Mesopotamia"},
						Answer:  "B",
					},
					{
						Text:    "What was the main cause of the American Civil War?",
						Options: []string{"Slavery", "Industrialization", "Religion", "Land Disputes"},
						Answer:  "A",
					},
					{
						Text:    "Which empire was led by Genghis Khan?",
						Options: []string{"Roman Empire", "Ottoman Empire", "Mongol Empire", "Byzantine Empire"},
						Answer:  "C",
					},
					{
						Text:    "What event triggered the start of World War I?",
						Options: []string{"The assassination of Archduke Franz Ferdinand", "The signing of the Treaty of Versailles", "The invasion of Poland", "The bombing of Pearl Harbor"},
						Answer:  "A",
					},
				},
			},
		},
	},
	{
		Name: "Nature",
		Paragraphs: []paragraphSeed{
			{
				Text: "Nature is essential to life on Earth, providing oxygen, water, and countless resources vital for survival. " +
					"It influences mental well-being, helping reduce stress and improve mood. " +
					"Forests regulate the Earth's climate, while bees play a critical role in pollination, sustaining biodiversity. " +
					"Protecting nature ensures the survival of ecosystems, preserving the balance necessary for life. " +
					"Activities like recycling and conservation help safeguard these natural resources. " +
					"Nature inspires creativity and innovation while reminding humanity of its interconnectedness with the planet.",
				Questions: []questionSeed{
					{
						Text:    "What is one of the key benefits of nature?",
						Options: []string{"Providing oxygen", "Enhancing technology", "Building infrastructure", "Advancing medicine"},
						Answer:  "A",
					},
					{
						Text:    "How does nature influence mental health?",
						Options: []string{"Increases stress levels", "Reduces stress and improves mood", "Causes distraction", "Promotes overworking"},
						Answer:  "B",
					},
					{
						Text:    "What do forests help regulate?",
						Options: []string{"Global warming", "The Earth's climate", "Technological advancements", "Urban development"},
						Answer:  "B",
					},
					{
						Text:    "What role do bees play in nature?",
						Options: []string{"Transporting seeds", "Pollination of plants", "Consuming flowers", "Producing plastic"},
						Answer:  "B",
					},
					{
						Text:    "Which activity helps preserve nature?",
						Options: []string{"Recycling waste", "Burning fossil fuels", "Excessive logging", "Building skyscrapers"},
						Answer:  "A",
					},
				},
			},
			{
				Text: "Nature provides countless resources and services vital to life, including clean air, water, and fertile soil. " +
					"Forests play a crucial role in the water cycle by storing and releasing water, while wetlands act as natural water filters. " +
					"Pollinators like bees sustain agriculture by helping plants reproduce. " +
					"Conserving nature ensures clean air and water, supports biodiversity, and protects ecosystems essential for life. " +
					"Planting trees in urban areas can combat heat and improve air quality, emphasizing the need for balance between " +
					"human development and natural preservation.",
				Questions: []questionSeed{
					{
						Text:    "What is the primary role of forests in the water cycle?",
						Options: []string{"To block rainfall", "To store and release water", "To increase water pollution", "To dry up rivers"},
						Answer:  "B",
					},
					{
						Text:    "What is one of the key benefits of wetlands?",
						Options: []string{"They act as natural water filters", "They promote soil erosion", "They block rainwater", "They increase water pollution"},
						Answer:  "A",
					},
					{
						Text:    "Why are pollinators important for agriculture?",
						Options: []string{"They destroy crops", "They help plants reproduce", "They block sunlight", "They promote soil erosion"},
						Answer:  "B",
					},
					{
						Text:    "What is the primary source of energy for life on Earth?",
						Options: []string{"Wind", "Fossil fuels", "The Sun", "The Moon"},
						Answer:  "C",
					},
					{
						Text:    "Why is planting trees vital for urban areas?",
						Options: []string{"It increases air pollution", "It reduces urban heat and improves air quality", "It blocks rainfall", "It causes water scarcity"},
						Answer:  "B",
					},
				},
			},
		},
	},
	{
		Name: "Science",
		Paragraphs: []paragraphSeed{
			{
				Text: "Science explores the laws and principles that govern the natural world. " +
					"Atoms, the building blocks of matter, form molecules and larger structures. " +
					"Photosynthesis, essential for life, allows plants to convert sunlight into energy. " +
					"The heart circulates blood, ensuring oxygen and nutrients reach cells. " +
					"Newton's laws describe motion, while discoveries like the speed of light and properties of elements like gold " +
					"have shaped our understanding of the universe. " +
					"Science connects humanity to its environment, revealing the wonders of the cosmos and the intricacies of life on Earth.",
				Questions: []questionSeed{
					{
						Text:    "What is the smallest unit of matter?",
						Options: []string{"Atom", "Molecule", "Cell", "Proton"},
						Answer:  "A",
					},
					{
						Text:    "What is the primary function of the heart in humans?",
						Options: []string{"Produces hormones", "Pumps blood", "Aids digestion", "Filters oxygen"},
						Answer:  "B",
					},
					{
						Text:    "What is the process of converting sunlight into chemical energy called?",
						Options: []string{"Respiration", "Photosynthesis", "Transpiration", "Fermentation"},
						Answer:  "B",
					},
					{
						Text:    "What is Newton's First Law of Motion also called?",
						Options: []string{"Law of Inertia", "Law of Gravity", "Conservation of Energy", "Principle of Relativity"},
						Answer:  "A",
					},
					{
						Text:    "What is the chemical symbol for gold?",
						Options: []string{"Gd", "Au", "Ag", "Go"},
						Answer:  "B",
					},
					{
						Text:    "What is the speed of light in a vacuum?",
						Options: []string{"3 x 10^8 m/s", "1.5 x 10^6 m/s", "9 x 10^9 m/s", "2 x 10^7 m/s"},
						Answer:  "A",
					},
				},
			},
		},
	},
	{
		Name: "Technology",
		Paragraphs: []paragraphSeed{
			{
				Text: "Technology has transformed every aspect of our lives, from the invention of the computer to the development " +
					"of artificial intelligence. Pioneers like Charles Babbage and Alan Turing laid the groundwork for modern computing. " +
					"The advent of the personal computer and the internet revolutionized communication and information sharing. " +
					"Today, technologies like AI and cloud computing continue to drive innovation, enabling new applications and industries. " +
					"Web development languages like HTML, JavaScript, and CSS are the building blocks of the digital world, " +
					"shaping everything from websites to mobile apps.",
				Questions: []questionSeed{
					{
						Text:    "Who is considered the father of computers?",
						Options: []string{"Charles Babbage", "Alan Turing", "Bill Gates", "Steve Jobs"},
						Answer:  "A",
					},
					{
						Text:    "What does HTML stand for?",
						Options: []string{"Hypertext Markup Language", "Hyper Transfer Markup Language", "High Transfer Markup Language", "HyperText Machine Language"},
						Answer:  "A",
					},
					{
						Text:    "Which company developed the first personal computer?",
						Options: []string{"Apple", "IBM", "Microsoft", "HP"},
						Answer:  "B",
					},
					{
						Text:    "What does the acronym 'AI' stand for?",
						Options: []string{"Automated Interface", "Artificial Intelligence", "Advanced Integration", "Algorithmic Interpretation"},
						Answer:  "B",
					},
					{
						Text:    "Which technology is used to make websites interactive?",
						Options: []string{"HTML", "CSS", "JavaScript", "SQL"},
						Answer:  "C",
					},
					{
						Text:    "What is cloud computing?",
						Options: []string{"Storing data on remote servers and accessing it over the internet", "A type of weather forecasting", "A hardware device for computing", "A form of energy-efficient computing"},
						Answer:  "A",
					},
				},
			},
		},
	},
}
