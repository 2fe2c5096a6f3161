package bootstrap

import "focuseval/internal/sample"

// scenario is one screen snapshot paired with a stated focus goal.
type scenario struct {
	userFocus   string
	appName     string
	windowTitle string
	text        string
	focusArea   sample.FocusArea
}

// focusedScenarios maps each focus goal to screens that match it.
var focusedScenarios = map[string][]scenario{
	"Writing Code": {
		{
			userFocus:   "Writing Code",
			appName:     "VS Code",
			windowTitle: "app.js",
			text:        "function handleUserLogin(email, password) {\n  const user = await User.findOne({ email });\n  if (!user) return { error: 'User not found' };",
			focusArea:   sample.FocusCoding,
		},
		{
			userFocus:   "Writing Code",
			appName:     "IntelliJ",
			windowTitle: "Main.java",
			text:        "public class Main {\n    public static void main(String[] args) {\n        System.out.println(\"Hello World\");\n    }\n}",
			focusArea:   sample.FocusCoding,
		},
		{
			userFocus:   "Writing Code",
			appName:     "Xcode",
			windowTitle: "ViewController.swift",
			text:        "@IBAction func buttonPressed(_ sender: UIButton) {\n    performSegue(withIdentifier: \"ShowDetail\", sender: self)\n}",
			focusArea:   sample.FocusCoding,
		},
	},
	"Reading Documentation": {
		{
			userFocus:   "Reading Documentation",
			appName:     "Chrome",
			windowTitle: "MDN Web Docs",
			text:        "Array.prototype.map()\nThe map() method creates a new array with the results of calling a function on every element",
			focusArea:   sample.FocusResearch,
		},
		{
			userFocus:   "Reading Documentation",
			appName:     "Chrome",
			windowTitle: "React Docs - Hooks Reference",
			text:        "useState\nconst [state, setState] = useState(initialValue)\n\nRules of Hooks:\n- Only call hooks at the top level",
			focusArea:   sample.FocusResearch,
		},
		{
			userFocus:   "Reading Documentation",
			appName:     "Safari",
			windowTitle: "Apple Developer",
			text:        "SwiftUI Views and Controls\nCreate the user interface of your app using views and controls",
			focusArea:   sample.FocusResearch,
		},
	},
	"Writing Email to Client": {
		{
			userFocus:   "Writing Email to Client",
			appName:     "Mail",
			windowTitle: "New Message",
			text:        "To: client@company.com\nSubject: Project Update - Q4 Deliverables\n\nDear Sarah,\n\n1. Phase 1 completed on schedule\n2. Phase 2 in progress (75% complete)",
			focusArea:   sample.FocusWriting,
		},
	},
	"Designing Mobile App UI": {
		{
			userFocus:   "Designing Mobile App UI",
			appName:     "Figma",
			windowTitle: "Mobile App Design - Profile Screen",
			text:        "Layers\n- Navigation Bar\n- User Avatar (120x120)\n- Username Label\n- Tab Bar\n\nColors: #007AFF (primary), #F2F2F7 (background)",
			focusArea:   sample.FocusDesign,
		},
	},
	"Analyzing Sales Data": {
		{
			userFocus:   "Analyzing Sales Data",
			appName:     "Excel",
			windowTitle: "Q4_Sales_Analysis.xlsx",
			text:        "Sales Dashboard - Q4 2024\n\nTotal Revenue: $2.4M (+15% YoY)\nUnits Sold: 12,847\nAverage Order Value: $186.73",
			focusArea:   sample.FocusOther,
		},
	},
}

// distractingScenarios are off-task screens paired with any focus goal.
var distractingScenarios = []scenario{
	{
		appName:     "YouTube",
		windowTitle: "Funny Cat Videos",
		text:        "Now Playing: Best Funny Cat Videos Compilation 2024\n10.2M views\n\n15:23 / 22:45\n\nUp next: Epic Fail Compilation",
		focusArea:   sample.FocusOther,
	},
	{
		appName:     "Chrome",
		windowTitle: "Twitter",
		text:        "Trending:\n#TechTwitter\n#RemoteWork\n#CodingMemes\n\n@memequeen: this meeting could have been an email fr fr",
		focusArea:   sample.FocusOther,
	},
	{
		appName:     "Netflix",
		windowTitle: "Netflix - Home",
		text:        "Continue Watching\n\nStranger Things\nSeason 4, Episode 7\n45:23 remaining\n\nRecommended for You: The Witcher, Breaking Bad",
		focusArea:   sample.FocusOther,
	},
	{
		appName:     "Chrome",
		windowTitle: "Reddit - r/programmerhumor",
		text:        "Hot Posts:\n1. 'When you fix a bug but create 3 new ones' [Image]\n2. 'CSS is easy they said...' [Meme]",
		focusArea:   sample.FocusOther,
	},
	{
		appName:     "WhatsApp",
		windowTitle: "WhatsApp Web",
		text:        "Family Group (47)\nMom: Don't forget dinner on Sunday!\nDad: Who's bringing dessert?\n\nFriends (128)\nJohn: Anyone up for drinks tonight?",
		focusArea:   sample.FocusCommunication,
	},
}

// ambiguousScenarios sit on the boundary: plausibly on-task activity in apps
// that often host distraction. Labelled on-task with reduced annotator
// confidence.
var ambiguousScenarios = []scenario{
	{
		userFocus:   "Studying Computer Science",
		appName:     "Chrome",
		windowTitle: "Stack Overflow - Quicksort",
		text:        "Question: How does quicksort algorithm work?\n\nQuicksort is a divide-and-conquer algorithm that works by selecting a 'pivot' element and partitioning the array around it.",
		focusArea:   sample.FocusResearch,
	},
	{
		userFocus:   "Working on Project",
		appName:     "Slack",
		windowTitle: "#general",
		text:        "PM: Hey team, quick update on Project Phoenix\nPM: We're moving the deadline to next Friday\nDev2: Do we need to adjust the sprint?",
		focusArea:   sample.FocusCommunication,
	},
	{
		userFocus:   "Research for Assignment",
		appName:     "Safari",
		windowTitle: "Wikipedia - Machine Learning",
		text:        "Machine learning (ML) is a field of study in artificial intelligence concerned with the development of algorithms that improve automatically through experience.",
		focusArea:   sample.FocusResearch,
	},
}

// focusGoals lists the goals used for synthetic mixing, in a fixed order so
// generation is reproducible under a seed.
var focusGoals = []string{
	"Writing Code",
	"Reading Documentation",
	"Writing Email to Client",
	"Designing Mobile App UI",
	"Analyzing Sales Data",
}
