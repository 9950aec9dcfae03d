package catalog

import "trivia-quiz-service/internal/domain"

// DefaultID names the built-in catalog.
const DefaultID = "default"

// Default returns the built-in general trivia catalog.
func Default() domain.Catalog {
	return domain.Catalog{
		ID: DefaultID,
		Questions: []domain.Question{
			{
				Category: "General Knowledge",
				Prompt:   "What is the capital of France?",
				Options:  []string{"Berlin", "Paris", "Madrid", "Rome"},
				Answer:   "Paris",
			},
			{
				Category: "Science",
				Prompt:   "Which planet is known as the Red Planet?",
				Options:  []string{"Earth", "Saturn", "Mars", "Jupiter"},
				Answer:   "Mars",
			},
			{
				Category: "Physics",
				Prompt:   "What is the boiling point of water?",
				Options:  []string{"90°C", "100°C", "110°C", "120°C"},
				Answer:   "100°C",
			},
			{
				Category: "Technology",
				Prompt:   "Who is the creator of React?",
				Options:  []string{"Evan You", "Jordan Walke", "Ryan Dahl", "Brendan Eich"},
				Answer:   "Jordan Walke",
			},
			{
				Category: "Math",
				Prompt:   "What is the value of Pi up to two decimal places?",
				Options:  []string{"3.14", "3.16", "3.12", "3.15"},
				Answer:   "3.14",
			},
			{
				Category: "Geography",
				Prompt:   "Which country has the largest land area?",
				Options:  []string{"Canada", "USA", "China", "Russia"},
				Answer:   "Russia",
			},
			{
				Category: "History",
				Prompt:   "Who was the first president of the United States?",
				Options:  []string{"Abraham Lincoln", "George Washington", "Thomas Jefferson", "John Adams"},
				Answer:   "George Washington",
			},
			{
				Category: "Sports",
				Prompt:   "Which sport is known as 'the king of sports'?",
				Options:  []string{"Basketball", "Cricket", "Football", "Tennis"},
				Answer:   "Football",
			},
			{
				Category: "Literature",
				Prompt:   "Who wrote 'Romeo and Juliet'?",
				Options:  []string{"Charles Dickens", "Jane Austen", "William Shakespeare", "Homer"},
				Answer:   "William Shakespeare",
			},
			{
				Category: "Music",
				Prompt:   "Which artist is known as the 'King of Pop'?",
				Options:  []string{"Elvis Presley", "Michael Jackson", "Prince", "Madonna"},
				Answer:   "Michael Jackson",
			},
		},
	}
}
