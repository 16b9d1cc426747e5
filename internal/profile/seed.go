package profile

// AvatarPlaceholders are used when a submitted profile has no avatar.
var AvatarPlaceholders = []string{
	"https://picsum.photos/seed/1/400/400",
	"https://picsum.photos/seed/2/400/400",
	"https://picsum.photos/seed/3/400/400",
	"https://picsum.photos/seed/4/400/400",
	"https://picsum.photos/seed/5/400/400",
}

// Seed returns a fresh copy of the curated directory.
func Seed() []Builder {
	out := make([]Builder, len(seedBuilders))
	for i, b := range seedBuilders {
		out[i] = b.Clone()
	}
	return out
}

var seedBuilders = []Builder{
	{
		ID:   "3",
		Name: "Robert Petillo",
		Role: "Builder & Entrepreneur",
		Bio:  "A multidisciplinary entrepreneur and AI developer bridging the gap between practical engineering and technology. Founder of MY NY Brands and a full-stack AI Builder.",
		FullBio: `A multidisciplinary entrepreneur and AI developer who bridges the gap between practical engineering and cutting-edge technology. Based in New York, I'd describe myself as an "AI Builder" and I currently manage a diverse portfolio of seven brands spanning food and beverage, fashion, wellness, and technology.

I transitioned from a career as an HVAC engineer to become a full-stack AI developer. This unique background allows me to approach technical building with a grounded, practical mindset aimed at solving real-world business problems.

**Key Focus Areas:**

**AI Development:** Specializes in building RAG (Retrieval-Augmented Generation) systems, API integration, and intelligent automation. My technical stack includes TypeScript, JavaScript, and Python, with active repositories for projects like Auro and ProductSearch.

**Brand Building:** I am the founder of "MY NY Brands" and am actively building ventures such as Black Orchyd (an innovative black hot sauce company), AI Wear, Healthy Press, and Agnes.

**Strategic Growth:** Beyond coding, I operate as a growth partner for businesses, offering strategic planning and product innovation to help scalable ventures thrive.`,
		AvatarURL: "/robert-petillo.jpg",
		Skills:    []string{"Product", "Strategy", "Leadership", "Innovation"},
		Projects: []Project{
			{Name: "Portfolio", URL: "https://portfolio-rho-opal-62.vercel.app/", Description: "Personal portfolio showcasing projects and work"},
		},
		Socials: []Social{
			{Platform: PlatformGithub, URL: "https://github.com/newyorkiswork"},
			{Platform: PlatformWebsite, URL: "https://portfolio-rho-opal-62.vercel.app/"},
		},
		Featured: true,
	},
	{
		ID:   "1",
		Name: "Samuel McFarlane",
		Role: "AI/ML Engineer & Full-Stack Developer",
		Bio:  "AI/ML Engineer specializing in Rust backend development, machine learning systems, and automation workflows. Building intelligent systems from first principles.",
		FullBio: `Samuel McFarlane grew up in Crown Heights, Brooklyn, and spent part of his youth in the South Bronx, developing an early understanding of how diverse communities adapt and thrive. Coming from a bilingual Panamanian household, he learned to navigate cultural diversity while fostering curiosity and discipline.

Before joining Pursuit, Samuel worked as a freelance developer and technical consultant, delivering end-to-end solutions for small businesses. His focus on automation, AI integration, and intelligent system design gave him a strong foundation in both backend logic and frontend interaction.

**Technical Focus:**

Samuel's work spans Rust backend development, machine learning systems, and automation workflows. Notable projects include momentum scoring algorithms for cybersecurity startup analysis, property investment intelligence platforms, and AI-powered streaming architectures with real-time subtitle translation.

Through Pursuit's AI Native Program, Samuel continues refining his expertise in machine learning, prompt engineering, and cloud-native architectures.`,
		AvatarURL: "/samuel-mcfarlane.jpg",
		Skills:    []string{"Rust", "Python", "ML/AI", "TypeScript", "Cloud Architecture"},
		Projects: []Project{
			{Name: "AI Streaming Architecture", URL: "https://github.com/SamMcfarlane-pursuit", Description: "Real-time subtitle translation with AI-powered streaming."},
			{Name: "Auction Intel", URL: "https://auction-intel.vercel.app/", Description: "Property investment intelligence platform."},
		},
		Socials: []Social{
			{Platform: PlatformGithub, URL: "https://github.com/SamMcfarlane-pursuit"},
		},
		Featured: true,
	},
	{
		ID:   "2",
		Name: "Jacob Williams",
		Role: "AI Researcher & Dev",
		Bio:  "Brooklyn-based designer bridging the gap between visual effects and product design. Specializing in Generative AI and prompt engineering to craft immersive, user-centric digital experiences.",
		FullBio: `Hi, I'm Jacob H. Williams. I am a Product Designer, Multi-Media Artist, and Prompt Engineer based in Brooklyn, NY.

My journey into design wasn't linear. It started in the fast-paced world of Visual Effects (VFX), where I helped bring creative visions to life for broadcast and brand standards, honing my skills in motion graphics, digital asset management, and visual storytelling. Today, I channel that obsession with detail and composition into UI/UX Design and AI Solutions.

I believe the best digital products feel as effortless as a well-lit city street. Whether I'm refining a user journey in Figma, engineering prompts for LLMs, or building in Webflow, my goal remains the same: accessible, inclusive, and engaging experiences.`,
		AvatarURL: "/JAKE.jpg",
		Skills:    []string{"UI/UX", "Figma", "GenAI", "Webflow", "Prompt Eng"},
		Projects: []Project{
			{Name: "VFX to AI-Driven UX", URL: "https://www.jacobhwilliams.me/", Description: "Innovative digital solutions merging cinematic visual storytelling with artificial intelligence workflows."},
		},
		Socials: []Social{
			{Platform: PlatformGithub, URL: "https://github.com/El-Pollo-Loco22"},
			{Platform: PlatformWebsite, URL: "https://www.jacobhwilliams.me/"},
			{Platform: PlatformLinkedIn, URL: "https://www.linkedin.com/in/jacob-h-williams/"},
		},
	},
	{
		ID:        "4",
		Name:      "Don Grier",
		Role:      "Full Stack Engineer",
		Bio:       "Passionate builder creating impactful web experiences. Focused on community-driven platforms and interactive applications.",
		FullBio:   "Don Grier is a Full Stack Engineer dedicated to building technology that serves communities. With a focus on modern web frameworks and interactive design, he creates platforms that are both functional and engaging.",
		AvatarURL: "/DonGrier.jpg",
		Skills:    []string{"React", "Next.js", "TypeScript", "Tailwind"},
		Projects: []Project{
			{Name: "Public Advocates", URL: "https://www.publicadvocatessocialsociety.org/", Description: "Community social society platform."},
			{Name: "Resource Re-entry Map", URL: "https://graceful-mermaid-e2de1a.netlify.app/", Description: "Interactive web application."},
		},
		Socials: []Social{
			{Platform: PlatformGithub, URL: "https://github.com/SONIMMORTAL"},
			{Platform: PlatformLinkedIn, URL: "https://www.linkedin.com/in/arimmortal/"},
		},
	},
}
