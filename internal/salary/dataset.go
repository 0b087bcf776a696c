package salary

// trainingData is the hand-entered sample set the model is fit to at startup.
// Salaries are annual INR.
var trainingData = []Record{
	{Skills: []string{"html", "css"}, Location: "Kolkata", ExperienceLevel: "fresher", Education: []string{"BCA"}, Category: "software", Salary: 250000},
	{Skills: []string{"javascript", "html", "css"}, Location: "Pune", ExperienceLevel: "fresher", Education: []string{"B.Tech Computer Science"}, Category: "software", Salary: 320000},
	{Skills: []string{"python"}, Location: "Chennai", ExperienceLevel: "fresher", Education: []string{"BSc Computer Science"}, Category: "software", Salary: 300000},
	{Skills: []string{"java", "sql"}, Location: "Hyderabad", ExperienceLevel: "fresher", Education: []string{"B.E Information Technology"}, Category: "software", Salary: 350000},
	{Skills: []string{"excel", "communication"}, Location: "Mumbai", ExperienceLevel: "fresher", Education: []string{"BCom"}, Category: "finance", Salary: 240000},
	{Skills: []string{"communication"}, Location: "Delhi", ExperienceLevel: "fresher", Education: []string{"BA English"}, Category: "marketing", Salary: 220000},
	{Skills: []string{"excel"}, Location: "Noida", ExperienceLevel: "fresher", Education: []string{"BCom"}, Category: "operations", Salary: 230000},
	{Skills: []string{"html", "css", "javascript"}, Location: "Remote", ExperienceLevel: "fresher", Education: []string{"BCA"}, Category: "design", Salary: 280000},

	{Skills: []string{"javascript", "react"}, Location: "Bangalore", ExperienceLevel: "entry", Education: []string{"B.Tech Computer Science"}, Category: "software", Salary: 500000},
	{Skills: []string{"python", "sql"}, Location: "Pune", ExperienceLevel: "entry", Education: []string{"BSc Statistics"}, Category: "software", Salary: 450000},
	{Skills: []string{"java", "sql"}, Location: "Chennai", ExperienceLevel: "entry", Education: []string{"B.E Computer Science"}, Category: "software", Salary: 480000},
	{Skills: []string{"node", "mongodb"}, Location: "Hyderabad", ExperienceLevel: "entry", Education: []string{"B.Tech"}, Category: "software", Salary: 520000},
	{Skills: []string{"angular", "typescript"}, Location: "Gurgaon", ExperienceLevel: "entry", Education: []string{"BCA", "MCA"}, Category: "software", Salary: 550000},
	{Skills: []string{"communication", "excel"}, Location: "Mumbai", ExperienceLevel: "entry", Education: []string{"BBA"}, Category: "sales", Salary: 350000},
	{Skills: []string{"data analysis", "excel"}, Location: "Delhi", ExperienceLevel: "entry", Education: []string{"BCom"}, Category: "finance", Salary: 420000},
	{Skills: []string{"communication", "leadership"}, Location: "Kolkata", ExperienceLevel: "entry", Education: []string{"BA"}, Category: "hr", Salary: 330000},
	{Skills: []string{"html", "css", "javascript", "react"}, Location: "Remote", ExperienceLevel: "entry", Education: []string{"B.Tech"}, Category: "software", Salary: 600000},
	{Skills: []string{"python", "machine learning"}, Location: "Bangalore", ExperienceLevel: "entry", Education: []string{"B.Tech", "M.Tech"}, Category: "software", Salary: 700000},
	{Skills: []string{"excel", "data analysis"}, Location: "Noida", ExperienceLevel: "entry", Education: []string{"BSc"}, Category: "operations", Salary: 380000},
	{Skills: []string{"communication"}, Location: "Chennai", ExperienceLevel: "entry", Education: []string{"BA"}, Category: "education", Salary: 300000},

	{Skills: []string{"javascript", "react", "node"}, Location: "Bangalore", ExperienceLevel: "mid", Education: []string{"B.Tech Computer Science"}, Category: "software", Salary: 1200000},
	{Skills: []string{"python", "sql", "aws"}, Location: "Pune", ExperienceLevel: "mid", Education: []string{"B.E"}, Category: "software", Salary: 1100000},
	{Skills: []string{"java", "sql", "docker"}, Location: "Hyderabad", ExperienceLevel: "mid", Education: []string{"B.Tech", "M.Tech"}, Category: "software", Salary: 1300000},
	{Skills: []string{"go", "kubernetes", "docker"}, Location: "Bangalore", ExperienceLevel: "mid", Education: []string{"B.Tech"}, Category: "software", Salary: 1600000},
	{Skills: []string{"typescript", "react", "node", "mongodb"}, Location: "Remote", ExperienceLevel: "mid", Education: []string{"BCA", "MCA"}, Category: "software", Salary: 1400000},
	{Skills: []string{"python", "machine learning", "data analysis"}, Location: "Bangalore", ExperienceLevel: "mid", Education: []string{"MSc Statistics"}, Category: "software", Salary: 1800000},
	{Skills: []string{"communication", "leadership"}, Location: "Mumbai", ExperienceLevel: "mid", Education: []string{"MBA"}, Category: "marketing", Salary: 900000},
	{Skills: []string{"excel", "data analysis", "sql"}, Location: "Gurgaon", ExperienceLevel: "mid", Education: []string{"BCom", "MBA"}, Category: "finance", Salary: 1000000},
	{Skills: []string{"communication", "leadership", "excel"}, Location: "Delhi", ExperienceLevel: "mid", Education: []string{"MBA"}, Category: "hr", Salary: 850000},
	{Skills: []string{"html", "css", "javascript"}, Location: "Kolkata", ExperienceLevel: "mid", Education: []string{"BCA"}, Category: "design", Salary: 800000},
	{Skills: []string{"sql", "excel"}, Location: "Chennai", ExperienceLevel: "mid", Education: []string{"BSc"}, Category: "operations", Salary: 750000},
	{Skills: []string{"communication"}, Location: "Noida", ExperienceLevel: "mid", Education: []string{"MA English"}, Category: "education", Salary: 650000},
	{Skills: []string{"data analysis", "python"}, Location: "Mumbai", ExperienceLevel: "mid", Education: []string{"MSc"}, Category: "healthcare", Salary: 950000},
	{Skills: []string{"aws", "docker", "python"}, Location: "Hyderabad", ExperienceLevel: "mid", Education: []string{"B.Tech"}, Category: "software", Salary: 1500000},
	{Skills: []string{"java", "sql"}, Location: "Pune", ExperienceLevel: "mid", Education: []string{"B.E"}, Category: "software", Salary: 1050000},

	{Skills: []string{"javascript", "react", "node", "aws"}, Location: "Bangalore", ExperienceLevel: "senior", Education: []string{"B.Tech"}, Category: "software", Salary: 2500000},
	{Skills: []string{"python", "machine learning", "aws", "docker"}, Location: "Bangalore", ExperienceLevel: "senior", Education: []string{"B.Tech", "M.Tech"}, Category: "software", Salary: 3200000},
	{Skills: []string{"go", "kubernetes", "docker", "aws"}, Location: "Remote", ExperienceLevel: "senior", Education: []string{"B.E"}, Category: "software", Salary: 3000000},
	{Skills: []string{"java", "sql", "kubernetes"}, Location: "Hyderabad", ExperienceLevel: "senior", Education: []string{"B.Tech"}, Category: "software", Salary: 2400000},
	{Skills: []string{"typescript", "angular", "node"}, Location: "Pune", ExperienceLevel: "senior", Education: []string{"MCA"}, Category: "software", Salary: 2200000},
	{Skills: []string{"leadership", "communication"}, Location: "Mumbai", ExperienceLevel: "senior", Education: []string{"MBA"}, Category: "marketing", Salary: 1800000},
	{Skills: []string{"data analysis", "sql", "leadership"}, Location: "Gurgaon", ExperienceLevel: "senior", Education: []string{"MBA Finance"}, Category: "finance", Salary: 2000000},
	{Skills: []string{"leadership", "communication", "excel"}, Location: "Delhi", ExperienceLevel: "senior", Education: []string{"MBA"}, Category: "hr", Salary: 1600000},
	{Skills: []string{"python", "data analysis", "machine learning"}, Location: "Chennai", ExperienceLevel: "senior", Education: []string{"PhD Statistics"}, Category: "software", Salary: 3500000},
	{Skills: []string{"communication", "leadership"}, Location: "Kolkata", ExperienceLevel: "senior", Education: []string{"MA", "PhD"}, Category: "education", Salary: 1400000},
	{Skills: []string{"sql", "excel", "leadership"}, Location: "Noida", ExperienceLevel: "senior", Education: []string{"MBA"}, Category: "operations", Salary: 1500000},
	{Skills: []string{"react", "typescript", "aws"}, Location: "Bangalore", ExperienceLevel: "senior", Education: []string{"B.Tech"}, Category: "software", Salary: 2800000},
	{Skills: []string{"java", "docker", "kubernetes", "aws"}, Location: "Mumbai", ExperienceLevel: "senior", Education: []string{"B.E", "M.Tech"}, Category: "software", Salary: 2900000},
	{Skills: []string{"python", "sql"}, Location: "Delhi", ExperienceLevel: "senior", Education: []string{"MSc"}, Category: "healthcare", Salary: 1700000},

	{Skills: []string{"leadership", "communication"}, Location: "Mumbai", ExperienceLevel: "executive", Education: []string{"MBA"}, Category: "finance", Salary: 4500000},
	{Skills: []string{"leadership", "communication", "machine learning"}, Location: "Bangalore", ExperienceLevel: "executive", Education: []string{"B.Tech", "MBA"}, Category: "software", Salary: 5000000},
	{Skills: []string{"leadership"}, Location: "Delhi", ExperienceLevel: "executive", Education: []string{"MBA"}, Category: "marketing", Salary: 3800000},
	{Skills: []string{"leadership", "communication"}, Location: "Gurgaon", ExperienceLevel: "executive", Education: []string{"MBA", "PhD"}, Category: "finance", Salary: 4800000},
	{Skills: []string{"leadership", "aws", "kubernetes"}, Location: "Remote", ExperienceLevel: "executive", Education: []string{"B.Tech", "MBA"}, Category: "software", Salary: 4600000},
	{Skills: []string{"leadership", "communication"}, Location: "Hyderabad", ExperienceLevel: "executive", Education: []string{"MBA"}, Category: "operations", Salary: 3600000},
	{Skills: []string{"leadership", "communication"}, Location: "Chennai", ExperienceLevel: "executive", Education: []string{"MBA"}, Category: "hr", Salary: 3200000},
	{Skills: []string{"leadership"}, Location: "Pune", ExperienceLevel: "executive", Education: []string{"MBA"}, Category: "sales", Salary: 3400000},

	{Skills: []string{"python", "django", "sql"}, Location: "Pune", ExperienceLevel: "entry", Education: []string{"B.Tech"}, Category: "software", Salary: 480000},
	{Skills: []string{"react", "redux"}, Location: "Bangalore", ExperienceLevel: "entry", Education: []string{"B.E"}, Category: "software", Salary: 520000},
	{Skills: []string{"sales", "communication"}, Location: "Mumbai", ExperienceLevel: "mid", Education: []string{"BBA", "MBA"}, Category: "sales", Salary: 780000},
	{Skills: []string{"excel"}, Location: "Indore", ExperienceLevel: "entry", Education: []string{"BCom"}, Category: "finance", Salary: 320000},
	{Skills: []string{"javascript"}, Location: "Jaipur", ExperienceLevel: "entry", Education: []string{"BCA"}, Category: "software", Salary: 380000},
	{Skills: []string{"python", "aws"}, Location: "Remote", ExperienceLevel: "mid", Education: []string{"B.Tech"}, Category: "software", Salary: 1350000},
	{Skills: []string{"node", "mongodb", "docker"}, Location: "Noida", ExperienceLevel: "mid", Education: []string{"MCA"}, Category: "software", Salary: 1150000},
	{Skills: []string{"communication", "excel"}, Location: "Kolkata", ExperienceLevel: "mid", Education: []string{"MBA"}, Category: "sales", Salary: 720000},
	{Skills: []string{"java"}, Location: "Chennai", ExperienceLevel: "entry", Education: []string{"B.E"}, Category: "software", Salary: 430000},
	{Skills: []string{"go", "sql"}, Location: "Gurgaon", ExperienceLevel: "mid", Education: []string{"B.Tech"}, Category: "software", Salary: 1450000},
	{Skills: []string{"machine learning", "python", "sql"}, Location: "Hyderabad", ExperienceLevel: "senior", Education: []string{"M.Tech"}, Category: "software", Salary: 3100000},
	{Skills: []string{"data analysis"}, Location: "Delhi", ExperienceLevel: "entry", Education: []string{"BSc"}, Category: "healthcare", Salary: 360000},
	{Skills: []string{"html", "css"}, Location: "Lucknow", ExperienceLevel: "fresher", Education: []string{"BCA"}, Category: "design", Salary: 210000},
	{Skills: []string{"kubernetes", "docker", "aws", "go"}, Location: "Bangalore", ExperienceLevel: "senior", Education: []string{"B.Tech", "M.Tech"}, Category: "software", Salary: 3400000},
	{Skills: []string{"typescript", "react"}, Location: "Mumbai", ExperienceLevel: "mid", Education: []string{"B.E"}, Category: "software", Salary: 1250000},
	{Skills: []string{"communication", "leadership"}, Location: "Ahmedabad", ExperienceLevel: "senior", Education: []string{"MBA"}, Category: "operations", Salary: 1450000},
	{Skills: []string{"python"}, Location: "Remote", ExperienceLevel: "fresher", Education: []string{"BSc"}, Category: "software", Salary: 310000},
	{Skills: []string{"sql", "excel", "data analysis"}, Location: "Pune", ExperienceLevel: "mid", Education: []string{"MBA"}, Category: "finance", Salary: 980000},
	{Skills: []string{"angular", "node", "mongodb"}, Location: "Hyderabad", ExperienceLevel: "mid", Education: []string{"B.Tech"}, Category: "software", Salary: 1200000},
	{Skills: []string{"leadership", "communication"}, Location: "Bangalore", ExperienceLevel: "executive", Education: []string{"MBA"}, Category: "healthcare", Salary: 4200000},
}
