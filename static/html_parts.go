// Package static holds the page fragments the web view is stitched from:
// Head, the chart, Logs, the log records, Tail.
package static

import "fmt"

// Head opens the page and renders the parameter form with the current
// values filled in.
func Head(width, height float64, sites int, random, delaunay bool) string {
	return fmt.Sprintf(head, width, height, sites, checked(random), checked(delaunay))
}

func checked(on bool) string {
	if on {
		return "checked"
	}
	return ""
}

var (
	head = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Voronoi diagram</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 55%%;
				padding: 10px;
				box-sizing: border-box;
			}

			#right-container {
				width: 45%%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow-y: auto;
				overflow-x: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				color: #d3d3d3;
				font-family: Consolas, monospace;
			}

			input[type="number"],
			input[type="submit"] {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			label, h1, a {
				color: #d3d3d3;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Voronoi diagram parameters</h1>
                <form id="diagram-form" method="POST">
                    <label for="width">Width (W):</label>
                    <input type="number" id="width" name="width" value="%g" min="100" max="5000">
                    <label for="height">Height (H):</label>
                    <input type="number" id="height" name="height" value="%g" min="100" max="5000"><br>
                    <label for="sites">Sites (n):</label>
                    <input type="number" id="sites" name="sites" value="%d" min="1" max="2000">
                    <label for="random">Random</label>
                    <input type="checkbox" id="random" name="random" value="true" %s>
                    <label for="delaunay">Delaunay</label>
                    <input type="checkbox" id="delaunay" name="delaunay" value="true" %s>
                    <input type="submit" value="Build">
                </form>
    `

	// Logs closes the chart column and opens the log panel.
	Logs = `
            </div>
            <div id="right-container">
                <h1>Logs</h1>
                <a href="/regions.json">regions.json</a>
                <div id="logs">`

	// Tail closes the page. The form posts back to / and replaces the
	// document with the response.
	Tail = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('diagram-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const formData = new FormData(this);
                const params = new URLSearchParams(formData).toString();

                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        throw new Error('diagram request failed');
                    }
                    return response.text();
                })
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error('Error:', error);
                });
            });
        </script>
    </body>
    </html>
    `
)
