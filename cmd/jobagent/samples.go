package main

// sampleJobs is a small built-in corpus for trying the system without a
// seed file.
var sampleJobs = []seedJob{
	{
		JobId:       "sample-0001",
		Title:       "Senior Golang Developer",
		Description: "Build and operate high-throughput payment processing services. You will own service design, profiling and capacity planning for a fleet handling millions of transactions daily.",
		Location:    "Pune",
		Skills:      "go, grpc, postgresql, kubernetes",
		Experience:  intPtr(5),
	},
	{
		JobId:       "sample-0002",
		Title:       "Golang Developer",
		Description: "Work on internal platform tooling for deployment automation and service discovery. Strong fundamentals in concurrency and networking expected.",
		Location:    "Bengaluru",
		Skills:      "go, docker, terraform, linux",
		Experience:  intPtr(3),
	},
	{
		JobId:       "sample-0003",
		Title:       "Backend Engineer - Java",
		Description: "Develop order management microservices for a retail platform. Experience with event-driven architectures and message brokers is a plus.",
		Location:    "Pune",
		Skills:      "java, spring boot, kafka, mysql",
		Experience:  intPtr(4),
	},
	{
		JobId:       "sample-0004",
		Title:       "Data Analyst",
		Description: "Turn raw clickstream data into dashboards and weekly business reviews. You will partner with product managers to define and track core metrics.",
		Location:    "Mumbai",
		Skills:      "sql, python, tableau, excel",
		Experience:  intPtr(2),
	},
	{
		JobId:       "sample-0005",
		Title:       "Machine Learning Engineer",
		Description: "Train and serve recommendation models for a video streaming product. Ownership spans feature pipelines, offline evaluation and online serving.",
		Location:    "Hyderabad",
		Skills:      "python, pytorch, spark, airflow",
		Experience:  intPtr(4),
	},
	{
		JobId:       "sample-0006",
		Title:       "DevOps Engineer",
		Description: "Maintain CI/CD pipelines and production Kubernetes clusters across three regions. On-call rotation with a focus on reducing toil through automation.",
		Location:    "Pune",
		Skills:      "kubernetes, aws, terraform, prometheus",
		Experience:  intPtr(3),
	},
	{
		JobId:       "sample-0007",
		Title:       "Frontend Developer - React",
		Description: "Ship customer-facing features for a fintech web application. Close collaboration with design on accessibility and performance budgets.",
		Location:    "Bengaluru",
		Skills:      "react, typescript, css, graphql",
		Experience:  intPtr(2),
	},
	{
		JobId:       "sample-0008",
		Title:       "Staff Software Engineer - Distributed Systems",
		Description: "Lead the design of a multi-tenant storage layer. You will set technical direction, review designs across teams and mentor senior engineers.",
		Location:    "Remote",
		Skills:      "go, raft, s3, performance tuning",
		Experience:  intPtr(10),
	},
	{
		JobId:       "sample-0009",
		Title:       "QA Automation Engineer",
		Description: "Build end-to-end test suites for mobile and web clients. You will own the test infrastructure and flakiness triage process.",
		Location:    "Chennai",
		Skills:      "selenium, appium, python, jenkins",
		Experience:  intPtr(3),
	},
	{
		JobId:       "sample-0010",
		Title:       "Engineering Intern",
		Description: "Six-month internship on the developer productivity team. Exposure to build systems, code review tooling and internal CLIs.",
		Location:    "Pune",
		Skills:      "git, python, linux",
	},
	{
		JobId:       "sample-0011",
		Title:       "Site Reliability Engineer",
		Description: "Keep a payments platform within its error budget. Work covers capacity planning, incident response and chaos testing.",
		Location:    "Mumbai",
		Skills:      "go, kubernetes, grafana, postgresql",
		Experience:  intPtr(5),
	},
	{
		JobId:       "sample-0012",
		Title:       "Product Data Scientist",
		Description: "Design and analyze experiments for growth initiatives. Strong grounding in causal inference and experiment design required.",
		Location:    "Bengaluru",
		Skills:      "python, sql, statistics, a/b testing",
		Experience:  intPtr(6),
	},
	{
		JobId:       "sample-0013",
		Title:       "Golang Developer - Platform",
		Description: "Extend an internal workflow orchestration engine used by every product team. Deep interest in schedulers and queue semantics welcome.",
		Location:    "Pune",
		Skills:      "go, redis, nats, postgresql",
		Experience:  intPtr(4),
	},
	{
		JobId:       "sample-0014",
		Title:       "Technical Writer",
		Description: "Own the public API documentation and internal runbooks. You will work with engineers to keep reference material accurate through releases.",
		Location:    "Remote",
		Skills:      "markdown, openapi, git",
	},
	{
		JobId:       "sample-0015",
		Title:       "Embedded Software Engineer",
		Description: "Develop firmware for industrial sensor gateways. Work spans low-power optimization, OTA updates and hardware bring-up.",
		Location:    "Hyderabad",
		Skills:      "c, rtos, mqtt, device drivers",
		Experience:  intPtr(5),
	},
}

func intPtr(v int) *int { return &v }
