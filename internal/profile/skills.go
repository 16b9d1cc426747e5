package profile

import "strings"

const fallbackSkillDefinition = "A key technology in the modern builder's stack."

// SkillDefinitions explains the skills shown in the skills strip.
var SkillDefinitions = map[string]string{
	"React":              "A JavaScript library for building user interfaces.",
	"Node.js":            "JavaScript runtime built on Chrome's V8 JavaScript engine.",
	"TypeScript":         "TypeScript is a strongly typed programming language that builds on JavaScript.",
	"UI/UX":              "User Interface and User Experience Design focused on creating effective and enjoyable user journeys.",
	"Figma":              "A collaborative web application for interface design.",
	"GenAI":              "Generative Artificial Intelligence capable of generating text, images, or other media.",
	"Webflow":            "A SaaS application that allows designers to build responsive websites with browser-based visual editing software.",
	"Prompt Eng":         "Prompt Engineering: the craft of writing inputs (prompts) that guide Generative AI models to produce optimal outputs.",
	"Go":                 "An open source programming language supported by Google that makes it easy to build simple, reliable, and efficient software.",
	"Kubernetes":         "An open-source container orchestration system for automating application deployment, scaling, and management.",
	"PostgreSQL":         "A powerful, open source object-relational database system.",
	"Redis":              "An in-memory data structure store, used as a database, cache, and message broker.",
	"Product":            "Product Management: strategically driving the development, market launch, and continual improvement of a company's products.",
	"Strategy":           "The formulation and implementation of major goals and initiatives taken by a company.",
	"Leadership":         "The action of leading a group of people or an organization.",
	"Innovation":         "The practical implementation of ideas that result in the introduction of new goods or services.",
	"Rust":               "A systems programming language focused on safety, speed, and concurrency.",
	"Python":             "A versatile programming language known for its readability and extensive ecosystem in data science and AI.",
	"ML/AI":              "Machine Learning and Artificial Intelligence: building systems that learn from data and make intelligent decisions.",
	"Cloud Architecture": "Designing and managing cloud computing systems for scalability, reliability, and performance.",
}

// DefineSkill returns the definition of a skill, or a generic sentence for
// skills the directory does not know about.
func DefineSkill(name string) string {
	if def, ok := SkillDefinitions[strings.TrimSpace(name)]; ok {
		return def
	}
	return fallbackSkillDefinition
}
