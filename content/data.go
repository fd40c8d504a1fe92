package content

// DefaultStore returns the portfolio dataset served by the site.
func DefaultStore() *Store {
	return NewStore(defaultProjects, defaultSkills, defaultExperiences, defaultSocials, defaultProfile)
}

var defaultProjects = []Project{
	{
		ID:          "1",
		Title:       "Designer Apparel",
		Description: "An e-commerce application for customizing selected suit, cart functionality, and secure payment processing.",
		ImageURL:    "https://images.pexels.com/photos/34577/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Tags:        []string{"React", "Node.js", "MongoDB", "Stripe"},
		DemoURL:     "https://designerapparel.netlify.app/",
		GitHubURL:   "https://github.com/anilreddy12001/designerApparel",
	},
	{
		ID:          "2",
		Title:       "Task Management App",
		Description: "A productivity app featuring drag-and-drop task management, reminders, and team collaboration tools.",
		ImageURL:    "https://images.pexels.com/photos/3243/pen-calendar-to-do-checklist.jpg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Tags:        []string{"React", "Firebase", "TypeScript", "Redux"},
		DemoURL:     "https://example.com",
		GitHubURL:   "https://github.com",
	},
	{
		ID:          "3",
		Title:       "AI Face Detector",
		Description: "An application that leverages completely client side tensorflow.js library to detect faces inside an uploaded image using machine learning and AI. Keeps getting better with larger data sets.",
		ImageURL:    "https://images.pexels.com/photos/8386434/pexels-photo-8386434.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Tags:        []string{"React", "TypeScript", "Tensorflowjs"},
		DemoURL:     "https://tensorflowapp.netlify.app/",
		GitHubURL:   "https://github.com/anilreddy12001/tensorFlow",
	},
	{
		ID:          "4",
		Title:       "Dashboard",
		Description: "Interactive dashboard for creating, editing, deleting, tracking and visualizing data of several states of India apart from authentication and authorization features.",
		ImageURL:    "https://images.pexels.com/photos/186461/pexels-photo-186461.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Tags:        []string{"React", "GraphQl", "Google Firebase", "Node.js", "NoSQL"},
		DemoURL:     "https://anilproject12001.web.app/",
		GitHubURL:   "https://github.com",
	},
}

var defaultSkills = []Skill{
	{Name: "JavaScript", Level: 5, Category: "frontend"},
	{Name: "TypeScript", Level: 4, Category: "frontend"},
	{Name: "React", Level: 5, Category: "frontend"},
	{Name: "HTML/CSS", Level: 5, Category: "frontend"},
	{Name: "Tailwind CSS", Level: 4, Category: "frontend"},
	{Name: "Next.js", Level: 4, Category: "frontend"},
	{Name: "Node.js", Level: 4, Category: "backend"},
	{Name: "Express", Level: 4, Category: "backend"},
	{Name: "MongoDB", Level: 3, Category: "backend"},
	{Name: "PostgreSQL", Level: 3, Category: "backend"},
	{Name: "Docker", Level: 3, Category: "tools"},
	{Name: "Git", Level: 4, Category: "tools"},
	{Name: "Jest", Level: 3, Category: "tools"},
	{Name: "CI/CD", Level: 3, Category: "tools"},
	{Name: "AWS", Level: 2, Category: "tools"},
	{Name: "UI/UX Design", Level: 3, Category: "other"},
}

var defaultExperiences = []Experience{
	{
		ID:           "1",
		Company:      "Axiscades Technologies",
		Position:     "Technical Lead Manager",
		StartDate:    "2023-01",
		EndDate:      "",
		Description:  "Leading the frontend team in developing modern web applications using React and TypeScript. Implemented CI/CD pipelines and improved throughput by 40%.",
		Technologies: []string{"Reactjs", "TypeScript", "Next.js", "Tailwind CSS", "Antd", "Vitejs", "Webpack"},
	},
	{
		ID:           "2",
		Company:      "Sterlite Technologies Ltd",
		Position:     "Senior Lead Developer",
		StartDate:    "2022-04",
		EndDate:      "2022-12",
		Description:  "Developed and maintained full-stack applications. Created RESTful APIs and implemented real-time features using WebSockets.",
		Technologies: []string{"Reactjs", "Node.js", "Express", "MongoDB", "Websockets"},
	},
	{
		ID:           "3",
		Company:      "Nokia Networks",
		Position:     "Frontend Developer",
		StartDate:    "2016-06",
		EndDate:      "2022-04",
		Description:  "Built responsive web applications and contributed to the company's UI component library. Worked closely with designers to implement pixel-perfect layouts.",
		Technologies: []string{"JavaScript", "HTML", "CSS", "jQuery", "Bootstrap", "Angularjs", "Reactjs"},
	},
	{
		ID:           "4",
		Company:      "Tata Elxsi",
		Position:     "Frontend Developer",
		StartDate:    "2012-04",
		EndDate:      "2016-06",
		Description:  "Built responsive web applications using jquery and Backbone.js. Worked closely with product owners to implement pixel-perfect layouts at client location.",
		Technologies: []string{"JavaScript", "HTML", "CSS", "jQuery", "Bootstrap", "Backbone.js"},
	},
	{
		ID:           "5",
		Company:      "KPIT Technologies",
		Position:     "Frontend Developer",
		StartDate:    "2010-10",
		EndDate:      "2012-03",
		Description:  "Created graphics for a client in the automotive domain and a web application for visualizing 2d drawings dynamically.",
		Technologies: []string{"Adobe Illustrator", "JavaScript", "HTML", "CSS"},
	},
	{
		ID:           "6",
		Company:      "Capgemini",
		Position:     "Frontend Developer",
		StartDate:    "2007-04",
		EndDate:      "2009-05",
		Description:  "Network management using IBM Netcool suite and geomap product using Google Maps API, Javascript, HTML and CSS.",
		Technologies: []string{"JavaScript", "HTML", "CSS"},
	},
}

var defaultSocials = []Social{
	{Name: "GitHub", URL: "https://github.com/anilreddy12001", Icon: "Github"},
	{Name: "LinkedIn", URL: "https://linkedin.com/anilkumareddy", Icon: "Linkedin"},
	{Name: "Twitter", URL: "https://twitter.com/anilreddy12001", Icon: "Twitter"},
	{Name: "Email", URL: "mailto:anilreddy12001@gmail.com", Icon: "Mail"},
}

var defaultProfile = Profile{
	Name:         "Anil Kumar Reddy K",
	Title:        "Frontend Lead Developer",
	Description:  "I'm a passionate frontend lead developer with over 14 years of experience creating responsive and performant web applications. I specialize in React, TypeScript, and modern JavaScript, with a focus on building intuitive user interfaces.",
	Location:     "Bengaluru, India",
	Availability: "Available for freelance work",
}
