package content

var (
	AboutIntro = `Experienced Assistant Manager with over 3 years of expertise in supply chain management, specializing in
	material planning, inventory control, and logistics optimization. Adept at managing large-scale operations, including
	overseeing material planning for 150+ drone productions, cost reduction on procurement, and achieving a **98% on-time
	delivery rate** for international shipments.`

	AboutRecognition = `Recognized for expanding vendor relationships with 50+ global suppliers, implementing SAP ERP systems,
	and driving process improvements that enhance efficiency and reduce costs. Awarded the *Spotlight Employee* and
	*Gold Medal* in MBA Aviation Management, reflecting my dedication to excellence and innovation in supply chain operations.`

	AboutTools = `Proficient in SAP ERP, Power BI, and advanced supply chain analytics, with strong leadership, teamwork, and
	problem-solving skills. Open to remote opportunities and relocation, ready to deliver impactful solutions and foster
	growth in dynamic, fast-paced environments.`

	AboutPassion = `My passion for supply chain excellence is driven by a deep understanding of industry best practices and a
	commitment to continuous improvement. I leverage my skills in SAP ERP, advanced analytics, and cross-functional team
	leadership to drive efficiency and innovation in supply chain operations.`
)

// Default returns the built-in profile.
func Default() *Profile {
	return &Profile{
		Name:            "Spandana Kunder",
		Headline:        "Assistant Manager | Supply Chain Specialist",
		Tagline:         "Supply Chain Specialist | MBA Gold Medalist",
		Title:           "Spandana Kunder - Supply Chain Specialist",
		MetaDescription: "Spandana Kunder - Assistant Manager and Supply Chain Specialist with expertise in Planning & Forecasting, Inventory & Logistics Optimization",
		PhotoURL:        "https://media.licdn.com/dms/image/v2/C5603AQF2bYUyjc9dLQ/profile-displayphoto-shrink_400_400/profile-displayphoto-shrink_400_400/0/1622442273125?e=1741824000&v=beta&t=Mw0k2zlS_xK5kjSZGS51kJfbAkVViuWV91QMC7wPEE8",
		ResumePath:      "Spandana_Kunder_Resume.docx",
		About:           []string{AboutIntro, AboutRecognition, AboutTools, AboutPassion},
		Skills: []Skill{
			{"Supply Chain Management", 95},
			{"Inventory Planning", 90},
			{"Logistics Optimization", 88},
			{"SAP ERP", 85},
			{"Procurement", 92},
			{"Demand Planning", 87},
			{"Cost Reduction Strategies", 89},
			{"Vendor Management", 86},
			{"Data Analysis", 84},
			{"Project Management", 88},
			{"Risk Management", 82},
			{"Lean Six Sigma", 80},
			{"Communication", 92},
			{"Negotiation", 88},
			{"Leadership", 85},
			{"Teamwork", 90},
		},
		Experience: []Experience{
			{
				Title:   "Assistant Manager Supply Chain",
				Company: "AEREO",
				Period:  "Oct 2024 - Present",
				Bullets: []string{
					"Lead end-to-end Supply Chain Planning, ensuring optimal material flow and cost-effectiveness across multiple product lines.",
					"Implement advanced procurement strategies, resulting in a 15% reduction in material costs and improved supplier relationships.",
					"Oversee inventory control measures, improving stock turnover by 20% and reducing carrying costs by 12%.",
					"Manage logistics operations, achieving a 98% on-time delivery rate for international shipments and reducing transportation costs by 10%.",
					"Collaborate with cross-functional teams to align supply chain strategies with overall business objectives, resulting in improved operational efficiency.",
					"Develop and implement KPIs to monitor supply chain performance, leading to data-driven decision-making and continuous improvement initiatives.",
					"Lead a team of 10 supply chain professionals, fostering a culture of innovation and excellence.",
				},
			},
			{
				Title:   "Executive- Material Management & Planning",
				Company: "AEREO",
				Period:  "Mar 2022 - Oct 2024",
				Bullets: []string{
					"Managed end-to-end Supply Chain Planning for the company, ensuring timely and cost-effective material flow of goods and services with Procurement, Inventory control, and Logistics management.",
					"Managed material planning for 150+ drone productions, optimizing inventory levels and reducing stockouts by 35%.",
					"Implemented cost reduction strategies, saving the company over $500,000 annually through strategic sourcing and negotiations.",
					"Expanded vendor relationships with 50+ global suppliers, improving supply chain resilience and reducing lead times by 25%.",
					"Spearheaded the implementation of SAP ERP system, enhancing operational efficiency by 30% and improving data accuracy.",
					"Conducted regular demand forecasting and analysis, resulting in a 15% improvement in forecast accuracy.",
					"Developed and implemented standard operating procedures (SOPs) for material management, ensuring consistency and quality across operations.",
					"Collaborated with R&D and production teams to optimize product designs for manufacturability and supply chain efficiency.",
				},
			},
			{
				Title:   "Market Research Intern",
				Company: "GMR GOA INTERNATIONAL AIRPORT",
				Period:  "Nov 2021 - Jan 2022",
				Bullets: []string{
					"Conducted market research and analysis for airport operations and services.",
					"Developed analytical skills and gained insights into the aviation industry.",
					"Assisted in preparing Request for Information (RFI) documents.",
					"Contributed to market knowledge and understanding of airport business dynamics.",
				},
			},
			{
				Title:   "Aviation Manager",
				Company: "AirCrews Aviation Pvt Ltd",
				Period:  "Jun 2021 - Jul 2021",
				Bullets: []string{
					"Gained hands-on experience in aviation management practices.",
					"Assisted in training and development programs for aviation personnel.",
					"Contributed to project management initiatives within the aviation sector.",
					"Developed skills in team management and leadership in an aviation context.",
				},
			},
			{
				Title:   "Graduate Engineer",
				Company: "Bosch India",
				Period:  "Aug 2018 - Aug 2019",
				Bullets: []string{
					"Managed TRAVIS Web and Mobile app development with master data creation, testing, survey, analysis, and management which lead to the project being successfully deployed in 20+ Bosch warehouses across India.",
					"Established and maintained accurate inventory records within the SAP ERP system, ensuring optimal stock levels while minimizing stockouts by planning on stock management.",
					"Conducted regular inventory audits and reconciliations to identify discrepancies and maintain data accuracy.",
					"Gained experience in logistics management, maintenance and repair, and production support.",
					"Developed skills in material handling, inventory control, and project coordination.",
				},
			},
		},
		Education: []Education{
			{
				Degree:      "MBA in Aviation Management",
				Institution: "Jain (Deemed-to-be University)",
				Period:      "2020 - 2022",
				Notes: []string{
					"Gold Medalist | GPA: 3.9/4.0",
					"Specialized in Aviation Supply Chain Management and Logistics",
				},
				Bullets: []string{
					`Thesis: "Optimizing Drone Supply Chains: A Case Study on Cost Reduction and Efficiency Improvement"`,
					"Led a team project on implementing blockchain in aviation supply chains",
					"Participated in multiple industry conferences on emerging supply chain technologies",
					"Demonstrated leadership and organizational skills by actively contributing to the vibrant college community by volunteering as part of the organizing team for the college fest Parichay.",
				},
			},
			{
				Degree:      "Bachelor of Engineering - BE, Mechanical Engineering",
				Institution: "RNS Institute of Technology - India",
				Period:      "2014 - 2018",
				Notes:       []string{"Activities and societies:"},
				Bullets: []string{
					"1st place in the Mechanical Yantra fest for the Project Groundnut Harvesting Machine which reduced time consumption significantly in separating groundnut pods from the plants effectively.",
					"Developed skills in teamwork and project planning",
				},
			},
			{
				Degree:      "Supply Chain Management Specialization",
				Institution: "Rutgers University",
				Period:      "Dec 2024",
				Bullets: []string{
					"Supply Chain Operations",
					"Supply Chain Planning",
					"Supply Chain Sourcing",
					"Supply Chain Logistics",
				},
				Summary: "Completed capstone project on optimizing global supply chain networks",
			},
			{
				Degree: "Additional Certifications",
				Bullets: []string{
					"SAP Material Management Power User (SAP PARTNER - EME EDUCATION, Sep 2020)",
					"Aviation Management- Ground/ Cabin Crew (Udemy, May 2021)",
					"Product Management First Steps (LinkedIn, May 2021)",
					"Supply Chain Foundations (LinkedIn, May 2021)",
					"Certified Listener - Level 1 (Listening Inn, Apr 2021)",
					"Introduction to Ayurveda (PRANA ACADEMY LIMITED, Oct 2020)",
					"Microsoft Excel- Excel from Beginner to Advanced (Udemy, Aug 2020)",
					"Powerpoint- Impactful Microsoft Powerpoint Presentation (Udemy, Aug 2020)",
					"Certified Yoga Instructor (S-Vyasa Yoga Instructor Course, Nov 2019)",
				},
			},
		},
		Projects: []Project{
			{
				Title:       "Numerical Analysis of Heat Transfer Enhancement of Circular Tube Bank Fin Heat Exchanger with Vortex Generators",
				Period:      "Jun 2018 - Aug 2018",
				Association: "Associated with RNS Institute of Technology - India",
				Description: "A study was done to increase the heat transfer rate in a heat exchanger using a vortex generator of a circular tube bank fin heat exchanger. Project carried under the guidance of Dr. Prakash S Kulkarni, Indian Institute of Science, Bengaluru.",
			},
			{
				Title:       "Design and Fabrication of a RC Nitro Aircraft",
				Period:      "Jan 2018 - Feb 2018",
				Association: "Associated with RNS Institute of Technology - India",
				Description: "Completed the intensive workshop on design & fabrication of an RC Nitro Aircraft held by HLI Model Sport in RNSIT, Bengaluru.",
			},
			{
				Title:       "Groundnut Harvesting Machine",
				Period:      "Mar 2017 - May 2017",
				Association: "Associated with RNS Institute of Technology - India",
				Description: "Designed and fabricated a machine to remove the groundnut pods from the plant effectively without breaking the seeds and also reduced time consumption. Won first place in Mini Project Expo held by Mech Radiance in RNSIT, Bengaluru.",
			},
			{
				Title:       "Supply Chain Optimization for Drone Production",
				Description: "Led a cross-functional team to optimize the supply chain for drone production, resulting in:",
				Highlights: []string{
					"30% reduction in lead time for critical components",
					"20% improvement in inventory turnover",
					"15% decrease in overall production costs",
					"Implementation of a just-in-time inventory system",
					"Development of a supplier scorecard system to enhance vendor performance",
					"Integration of IoT devices for real-time tracking of high-value components",
				},
			},
			{
				Title:       "Global Logistics Network Redesign",
				Description: "Spearheaded a project to redesign the company's global logistics network, achieving:",
				Highlights: []string{
					"40% reduction in international shipping costs",
					"25% improvement in on-time delivery performance",
					"Establishment of strategic partnerships with 3 new global logistics providers",
					"Implementation of real-time tracking system for all international shipments",
					"Development of a risk management framework for supply chain disruptions",
					"Creation of a centralized control tower for end-to-end visibility",
				},
			},
		},
		Achievements: []Achievement{
			{"Spotlight Employee of the Year 2023", "Recognized for outstanding contributions to supply chain optimization and cost reduction initiatives."},
			{"Gold Medalist in MBA Aviation Management", "Awarded for academic excellence and outstanding performance in the MBA program at Jain (Deemed-to-be University)."},
			{"Supply Chain Management Specialization", "Successfully completed the comprehensive specialization from Rutgers University, covering key areas such as Supply Chain Operations, Planning, Sourcing, and Logistics."},
			{"First Place in Mechanical Yantra Fest", "Won first place for the Groundnut Harvesting Machine project, which significantly reduced time in separating groundnut pods from plants."},
		},
		Affiliations: []string{
			"Member, Council of Supply Chain Management Professionals (CSCMP)",
			"Associate, Chartered Institute of Procurement & Supply (CIPS)",
			"Member, Institute for Supply Management (ISM)",
			"Member, Association for Supply Chain Management (ASCM)",
		},
		Languages: []Language{
			{"English", "Native or bilingual proficiency"},
			{"Hindi", "Native or bilingual proficiency"},
			{"Kannada", "Native or bilingual proficiency"},
			{"Korean", "Elementary proficiency"},
		},
		Contact: ContactInfo{
			Email:    "spandana.kunder@example.com",
			Phone:    "+1 (555) 123-4567",
			Location: "Bengaluru, Karnataka, India",
			LinkedIn: "https://linkedin.com/in/spandanakunder",
			Twitter:  "https://twitter.com/spandanakunder",
		},
		Copyright: "© 2025 Spandana Kunder. All rights reserved.",
	}
}
